package main

import (
	"strconv"

	"pifp_protocol/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (intents,
// sender, timestamps) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// nowUnix reads the block timestamp from the env snapshot. The host hands it
// over as a decimal string; a malformed value means the node is broken and we
// abort instead of reverting.
func nowUnix() int64 {
	ts := currentEnv().Timestamp
	val, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		sdk.Abort("invalid block timestamp")
	}
	return val
}

// requireTransferAllow scans the attached intents for a transfer.allow that
// covers the requested draw. Deposits without a matching intent fail the
// authorization check before any funds move.
func requireTransferAllow(amount Amount, token sdk.Asset) {
	for _, intent := range currentIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != AssetToString(token) {
			continue
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil {
			continue
		}
		if Amount(limit) >= amount {
			return
		}
	}
	fail(ErrNotAuthorized)
}
