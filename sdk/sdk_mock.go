//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// In-memory stand-in for the wasm host so the contract can run under plain
// `go test`. It mirrors the host ABI: keyed string storage, the env blob,
// intent-gated draws, and transfers out of the contract account. Revert
// panics with a typed error that tests can catch and inspect.

// MockContractAddress is the address the mock host books contract funds under.
const MockContractAddress Address = "contract:pifp"

// RevertError is the value a reverted mock transaction panics with.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("revert(%s): %s", e.Symbol, e.Msg)
}

// MockTransfer records one token movement issued through the mock host.
type MockTransfer struct {
	From   Address
	To     Address
	Amount int64
	Asset  Asset
}

type mockHost struct {
	state     map[string]string
	sender    Address
	timestamp int64
	txID      string
	blockID   string
	intents   []Intent
	balances  map[string]int64
	transfers []MockTransfer
	logs      []string
}

var mock = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:     map[string]string{},
		sender:    "hive:nobody",
		timestamp: 100_000,
		txID:      "tx-0",
		blockID:   "block-0",
		balances:  map[string]int64{},
	}
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// --- host ABI ---

func Log(s string) {
	mock.logs = append(mock.logs, s)
}

func StateSetObject(key string, value string) {
	mock.state[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mock.state[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mock.state, key)
}

func Abort(msg string) {
	panic(msg)
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

func GetEnv() Env {
	return Env{
		ContractId:  MockContractAddress.String(),
		TxId:        mock.txID,
		BlockId:     mock.blockID,
		Timestamp:   strconv.FormatInt(mock.timestamp, 10),
		Sender: Sender{
			Address:       mock.sender,
			RequiredAuths: []Address{mock.sender},
		},
		Intents: mock.intents,
	}
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = MockContractAddress.String()
	case "tx.id":
		val = mock.txID
	case "block.id":
		val = mock.blockID
	case "block.timestamp":
		val = strconv.FormatInt(mock.timestamp, 10)
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return mock.balances[balanceKey(address, asset)]
}

// HiveDraw enforces the same rules the real host does: the caller must have
// attached a transfer.allow intent covering the asset and amount, and must
// actually hold the funds.
func HiveDraw(amount int64, asset Asset) {
	if amount <= 0 {
		Revert("draw amount must be positive", "host_draw")
	}
	if !intentCovers(amount, asset) {
		Revert("no transfer.allow intent covers the draw", "host_draw")
	}
	from := balanceKey(mock.sender, asset)
	if mock.balances[from] < amount {
		Revert("insufficient balance for draw", "host_draw")
	}
	mock.balances[from] -= amount
	mock.balances[balanceKey(MockContractAddress, asset)] += amount
	mock.transfers = append(mock.transfers, MockTransfer{
		From: mock.sender, To: MockContractAddress, Amount: amount, Asset: asset,
	})
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	if amount <= 0 {
		Revert("transfer amount must be positive", "host_transfer")
	}
	from := balanceKey(MockContractAddress, asset)
	if mock.balances[from] < amount {
		Revert("insufficient contract balance", "host_transfer")
	}
	mock.balances[from] -= amount
	mock.balances[balanceKey(to, asset)] += amount
	mock.transfers = append(mock.transfers, MockTransfer{
		From: MockContractAddress, To: to, Amount: amount, Asset: asset,
	})
}

func intentCovers(amount int64, asset Asset) bool {
	for _, intent := range mock.intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil {
			continue
		}
		if limit >= amount {
			return true
		}
	}
	return false
}

// --- test controls ---

// MockReset wipes storage, balances, logs and env back to a fresh host.
func MockReset() {
	mock = newMockHost()
}

// MockSetSender sets msg.sender (and its required auth) for following calls.
func MockSetSender(addr Address) {
	mock.sender = addr
}

// MockSetTimestamp sets the block timestamp in unix seconds.
func MockSetTimestamp(ts int64) {
	mock.timestamp = ts
}

// MockSetTxID sets the tx.id env key so env caching sees a new transaction.
func MockSetTxID(id string) {
	mock.txID = id
}

// MockSetIntents replaces the intents attached to the next call.
func MockSetIntents(intents []Intent) {
	mock.intents = intents
}

// MockAllowTransfer attaches a single transfer.allow intent, the common case.
func MockAllowTransfer(limit int64, asset Asset) {
	mock.intents = []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatInt(limit, 10),
			"token": asset.String(),
		},
	}}
}

// MockMint credits an address out of thin air so tests can fund donors.
func MockMint(addr Address, asset Asset, amount int64) {
	mock.balances[balanceKey(addr, asset)] += amount
}

// MockLogs returns every console line emitted since the last reset.
func MockLogs() []string {
	return mock.logs
}

// MockTransfers returns every token movement since the last reset.
func MockTransfers() []MockTransfer {
	return mock.transfers
}
