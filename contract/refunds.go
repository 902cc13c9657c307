package main

import "pifp_protocol/sdk"

// ProjectsExpire flips a project whose deadline passed into the terminal
// Expired status. Anyone may call it; the deadline is the only clock.
// Example payload: "1"
//
//go:wasmexport projects_expire
func ProjectsExpire(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	id := decodeProjectIDArg(payload)
	cfg, state := loadProjectPair(id)
	if nowUnix() < cfg.Deadline {
		fail(ErrInvalidDeadline)
	}
	if state.Status == StatusCompleted || state.Status == StatusExpired {
		fail(ErrInvalidStateTransition)
	}
	state.Status = StatusExpired
	saveProjectState(id, state)
	emitExpiredEvent(id, cfg.Deadline)
	return strptr("expired")
}

// ProjectsRefund returns the caller's escrowed slice of one token after the
// project expired. A project past its deadline that nobody expired yet is
// expired lazily right here, so donors never depend on a third party calling
// projects_expire first. Refunds deliberately skip the pause check: a paused
// protocol must not trap donor funds.
// Example payload: "1|hive"
//
//go:wasmexport projects_refund
func ProjectsRefund(payload *string) *string {
	requireInitialized()
	id, token := decodeRefundArgs(payload)
	cfg, state := loadProjectPair(id)

	lazyExpired := false
	switch state.Status {
	case StatusExpired:
	case StatusFunding, StatusActive:
		if nowUnix() < cfg.Deadline {
			fail(ErrInvalidStateTransition)
		}
		lazyExpired = true
	default:
		fail(ErrInvalidStateTransition)
	}

	donor := getSenderAddress()
	amount := getDonorContribution(id, token, donor)
	if amount <= 0 {
		fail(ErrInsufficientBalance)
	}

	// zero the records before the transfer so a replay finds nothing to move
	clearDonorContribution(id, token, donor)
	subTokenBalance(id, token, amount)
	if lazyExpired {
		state.Status = StatusExpired
		saveProjectState(id, state)
		emitExpiredEvent(id, cfg.Deadline)
	}
	hostTransfer(donor, amount, token)
	emitRefundedEvent(id, AddressToString(donor), AssetToString(token), amount)
	return strptr("refunded")
}

// hostDraw pulls escrow funds from the sender into the contract account.
func hostDraw(amount Amount, token sdk.Asset) {
	sdk.HiveDraw(int64(amount), token)
}

// hostTransfer pays funds out of the contract account.
func hostTransfer(to sdk.Address, amount Amount, token sdk.Asset) {
	sdk.HiveTransfer(to, int64(amount), token)
}
