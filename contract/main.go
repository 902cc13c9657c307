////////////////////////////////////////////////////////////////////////////////
// PIFP Protocol: escrow + milestone release engine for impact funding
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as SuperAdmin.
// Must be called before any other function; a second call reverts.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isInitialized() {
		fail(ErrAlreadyInitialized)
	}
	sender := getSenderAddress()
	setRole(sender, RoleSuperAdmin)
	markInitialized()
	emitInitializedEvent(AddressToString(sender))
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Protocol Pause
// -----------------------------------------------------------------------------

// ProtocolPause freezes every state-changing flow except refunds.
// Admin tier only. Pausing twice is a no-op.
//
//go:wasmexport protocol_pause
func ProtocolPause(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	requireAdminOrAbove(sender)
	if !isPaused() {
		setPaused(true)
		emitPausedEvent(AddressToString(sender))
	}
	return strptr("paused")
}

// ProtocolUnpause resumes normal operation. Admin tier only.
//
//go:wasmexport protocol_unpause
func ProtocolUnpause(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	requireAdminOrAbove(sender)
	if isPaused() {
		setPaused(false)
		emitUnpausedEvent(AddressToString(sender))
	}
	return strptr("unpaused")
}

// ProtocolIsPaused reports the pause flag as "true"/"false" for tooling.
//
//go:wasmexport protocol_is_paused
func ProtocolIsPaused(payload *string) *string {
	if isPaused() {
		return strptr("true")
	}
	return strptr("false")
}
