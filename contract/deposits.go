package main

// ProjectsDeposit escrows a donation. The donor attaches a transfer.allow
// intent covering the amount; the contract draws the funds, grows the pooled
// balance and the donor's own slice, and flips Funding to Active on the
// project's first deposit.
// Example payload: "1|hive|500"
//
//go:wasmexport projects_deposit
func ProjectsDeposit(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	args := decodeDepositArgs(payload)
	if args.Amount <= 0 {
		fail(ErrInvalidAmount)
	}
	cfg, state := loadProjectPair(args.ProjectID)
	if nowUnix() >= cfg.Deadline {
		fail(ErrProjectExpired)
	}
	if state.Status != StatusFunding && state.Status != StatusActive {
		fail(ErrProjectNotActive)
	}
	if !isAcceptedToken(cfg, args.Token) {
		fail(ErrTokenNotAccepted)
	}

	donor := getSenderAddress()
	requireTransferAllow(args.Amount, args.Token)
	// draw first: if the donor cannot cover the amount the host reverts here
	// and no bookkeeping ever happens
	hostDraw(args.Amount, args.Token)

	must(addTokenBalance(args.ProjectID, args.Token, args.Amount))
	must(addDonorContribution(args.ProjectID, args.Token, donor, args.Amount))

	changed := false
	if !hasDonated(args.ProjectID, donor) {
		markDonated(args.ProjectID, donor)
		state.DonationCount++
		changed = true
	}
	activated := false
	if state.Status == StatusFunding {
		state.Status = StatusActive
		activated = true
		changed = true
	}
	if changed {
		saveProjectState(args.ProjectID, state)
	}

	emitFundedEvent(args.ProjectID, AddressToString(donor), AssetToString(args.Token), args.Amount)
	if activated {
		emitActivatedEvent(args.ProjectID)
	}
	return strptr("deposited")
}
