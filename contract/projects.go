package main

import (
	"encoding/json"

	"pifp_protocol/sdk"
)

// ProjectsRegister creates a new project in Funding status. The caller needs
// the project manager role or the admin tier, and becomes the project creator
// that a later release pays out to.
// Example payload: "1000|1756000000|<64 hex chars>|hive;hbd"
//
//go:wasmexport projects_register
func ProjectsRegister(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireCanRegister(sender)
	args := decodeRegisterProjectArgs(payload)

	if len(args.AcceptedTokens) == 0 {
		fail(ErrEmptyAcceptedTokens)
	}
	if len(args.AcceptedTokens) > MaxAcceptedTokens {
		fail(ErrTooManyTokens)
	}
	for i, a := range args.AcceptedTokens {
		for _, b := range args.AcceptedTokens[:i] {
			if a == b {
				fail(ErrDuplicateToken)
			}
		}
	}
	if args.Goal <= 0 || args.Goal > MaxGoal {
		fail(ErrInvalidGoal)
	}
	now := nowUnix()
	maxDeadline, err := checkedAdd(Amount(now), Amount(MaxDeadlineWindow))
	if err != nil {
		fail(ErrDeadlineOverflow)
	}
	if args.Deadline <= now || args.Deadline > int64(maxDeadline) {
		fail(ErrInvalidDeadline)
	}

	id := nextProjectID()
	cfg := &ProjectConfig{
		ID:             id,
		Creator:        sender,
		AcceptedTokens: args.AcceptedTokens,
		Goal:           args.Goal,
		ProofHash:      args.ProofHash,
		Deadline:       args.Deadline,
	}
	saveProjectConfig(cfg)
	saveProjectState(id, &ProjectState{Status: StatusFunding})
	emitProjectCreatedEvent(id, AddressToString(sender), AssetToString(args.AcceptedTokens[0]), args.Goal)
	return strptr(UInt64ToString(id))
}

// ProjectsGet returns the combined project view as JSON.
// Example payload: "1"
//
//go:wasmexport projects_get
func ProjectsGet(payload *string) *string {
	id := decodeProjectIDArg(payload)
	cfg, state := loadProjectPair(id)
	data, err := json.Marshal(combineProject(cfg, state))
	if err != nil {
		sdk.Abort("project marshal failed")
	}
	return strptr(string(data))
}

// ProjectsGetBalance returns one pooled escrow balance as a decimal string.
// Unknown projects revert; a token the project never saw reads as zero.
// Example payload: "1|hive"
//
//go:wasmexport projects_get_balance
func ProjectsGetBalance(payload *string) *string {
	id, token := decodeProjectTokenArgs(payload)
	loadProjectPair(id)
	return strptr(Int64ToString(int64(getTokenBalance(id, token))))
}

// ProjectsGetBalances returns every accepted token's pooled balance as JSON,
// including zero pools so callers see the full accepted set.
// Example payload: "1"
//
//go:wasmexport projects_get_balances
func ProjectsGetBalances(payload *string) *string {
	id := decodeProjectIDArg(payload)
	cfg, _ := loadProjectPair(id)
	view := &ProjectBalances{
		ProjectID: id,
		Balances:  make(map[string]int64, len(cfg.AcceptedTokens)),
	}
	for _, token := range cfg.AcceptedTokens {
		view.Balances[AssetToString(token)] = int64(getTokenBalance(id, token))
	}
	data, err := json.Marshal(view)
	if err != nil {
		sdk.Abort("balances marshal failed")
	}
	return strptr(string(data))
}

// ProjectsGetContribution returns the caller's refundable slice for a token.
// Example payload: "1|hive"
//
//go:wasmexport projects_get_contribution
func ProjectsGetContribution(payload *string) *string {
	id, token := decodeProjectTokenArgs(payload)
	loadProjectPair(id)
	donor := getSenderAddress()
	return strptr(Int64ToString(int64(getDonorContribution(id, token, donor))))
}
