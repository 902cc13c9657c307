package sdk

// Env is the per-transaction execution environment the host hands to the
// contract. Sender and Intents are filled from the msg.* keys of the raw
// env blob; the rest maps straight onto the flat JSON keys.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Intents     []Intent `json:"intents"`
}
