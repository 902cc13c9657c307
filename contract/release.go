package main

// ProjectsVerifyRelease is the oracle's attestation path. A submitted hash
// matching the registration commitment completes the project and pays every
// escrowed pool out to the creator. Each pool is zeroed before its transfer
// so a host failure mid-settlement cannot double-pay.
// Example payload: "1|<64 hex chars>"
//
//go:wasmexport projects_verify_release
func ProjectsVerifyRelease(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireOracle(sender)
	id, submitted := decodeVerifyReleaseArgs(payload)
	cfg, state := loadProjectPair(id)

	switch state.Status {
	case StatusCompleted:
		fail(ErrMilestoneAlreadyReleased)
	case StatusExpired:
		// an expired project is gone as far as verification is concerned
		fail(ErrProjectNotFound)
	}
	if submitted != cfg.ProofHash {
		fail(ErrVerificationFailed)
	}

	state.Status = StatusCompleted
	saveProjectState(id, state)

	for _, token := range cfg.AcceptedTokens {
		amount := drainTokenBalance(id, token)
		if amount == 0 {
			continue
		}
		hostTransfer(cfg.Creator, amount, token)
		emitReleasedEvent(id, AssetToString(token), amount)
	}
	emitVerifiedEvent(id, AddressToString(sender), submitted)
	return strptr("released")
}
