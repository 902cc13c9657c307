package main

import (
	"strconv"

	"pifp_protocol/sdk"
)

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextProjectID allocates a dense zero-based id and persists the bumped counter.
func nextProjectID() uint64 {
	id := getCount(ProjectsCount)
	setCount(ProjectsCount, id+1)
	return id
}

// isInitialized checks the one-shot init marker.
func isInitialized() bool {
	ptr := sdk.StateGetObject(InitializedKey)
	return ptr != nil && *ptr == "1"
}

// markInitialized flips the init marker, contract_init is the only writer.
func markInitialized() {
	sdk.StateSetObject(InitializedKey, "1")
}

// isPaused reads the protocol-wide pause flag.
func isPaused() bool {
	ptr := sdk.StateGetObject(PausedKey)
	return ptr != nil && *ptr == "1"
}

// setPaused persists the flag; unpausing deletes the entry to keep state lean.
func setPaused(paused bool) {
	if paused {
		sdk.StateSetObject(PausedKey, "1")
		return
	}
	sdk.StateDeleteObject(PausedKey)
}

// requireInitialized gates every mutating entrypoint behind contract_init.
func requireInitialized() {
	if !isInitialized() {
		fail(ErrNotInitialized)
	}
}

// requireNotPaused blocks state-changing flows while the protocol is frozen.
// Refunds stay exempt so a pause can never trap donor funds.
func requireNotPaused() {
	if isPaused() {
		fail(ErrProtocolPaused)
	}
}
