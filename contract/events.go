package main

import (
	"fmt"

	"pifp_protocol/sdk"
)

// emitInitializedEvent writes a tiny "ci" log so watchers know the contract is live.
func emitInitializedEvent(superAdmin string) {
	sdk.Log(fmt.Sprintf(
		"ci|by:%s",
		superAdmin,
	))
}

// emitProjectCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitProjectCreatedEvent(projectId uint64, creator string, firstToken string, goal Amount) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|tk:%s|goal:%d",
		projectId,
		creator,
		firstToken,
		goal,
	))
}

// emitFundedEvent logs every escrow deposit so indexers can replay balances from logs only.
func emitFundedEvent(projectId uint64, donor string, token string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"pf|id:%d|by:%s|tk:%s|am:%d",
		projectId,
		donor,
		token,
		amount,
	))
}

// emitActivatedEvent marks the Funding to Active flip on the first deposit.
func emitActivatedEvent(projectId uint64) {
	sdk.Log(fmt.Sprintf(
		"pa|id:%d",
		projectId,
	))
}

// emitVerifiedEvent records the oracle attestation that matched the commitment.
func emitVerifiedEvent(projectId uint64, oracle string, hash string) {
	sdk.Log(fmt.Sprintf(
		"pv|id:%d|by:%s|h:%s",
		projectId,
		oracle,
		hash,
	))
}

// emitReleasedEvent logs one line per token pool paid out to the creator.
func emitReleasedEvent(projectId uint64, token string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"fr|id:%d|tk:%s|am:%d",
		projectId,
		token,
		amount,
	))
}

// emitExpiredEvent marks the terminal Expired flip, whether explicit or lazy.
func emitExpiredEvent(projectId uint64, deadline int64) {
	sdk.Log(fmt.Sprintf(
		"pe|id:%d|dl:%d",
		projectId,
		deadline,
	))
}

// emitRefundedEvent traces each donor payout so refunds can be audited per token.
func emitRefundedEvent(projectId uint64, donor string, token string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"rd|id:%d|to:%s|tk:%s|am:%d",
		projectId,
		donor,
		token,
		amount,
	))
}

// emitPausedEvent signals the protocol-wide freeze.
func emitPausedEvent(admin string) {
	sdk.Log(fmt.Sprintf(
		"pp|by:%s",
		admin,
	))
}

// emitUnpausedEvent mirrors the pause ping when operations resume.
func emitUnpausedEvent(admin string) {
	sdk.Log(fmt.Sprintf(
		"pu|by:%s",
		admin,
	))
}

// emitRoleGrantedEvent leaves a short audit line for every role assignment.
func emitRoleGrantedEvent(target string, role Role, by string) {
	sdk.Log(fmt.Sprintf(
		"rg|to:%s|r:%s|by:%s",
		target,
		role.String(),
		by,
	))
}

// emitRoleRevokedEvent mirrors the grant ping for removals.
func emitRoleRevokedEvent(target string, by string) {
	sdk.Log(fmt.Sprintf(
		"rr|to:%s|by:%s",
		target,
		by,
	))
}
