package main

import "pifp_protocol/sdk"

// ContractError is the closed, numbered error taxonomy of the protocol.
// Internal operations return these as values; entrypoints translate them
// into a host revert so no partial effect ever survives a failed call.
type ContractError struct {
	Code   uint32
	Symbol string
	Msg    string
}

func (e *ContractError) Error() string {
	return e.Symbol + ": " + e.Msg
}

var (
	ErrProjectNotFound          = &ContractError{1, "project_not_found", "project does not exist"}
	ErrMilestoneNotFound        = &ContractError{2, "milestone_not_found", "milestone does not exist"}
	ErrMilestoneAlreadyReleased = &ContractError{3, "milestone_already_released", "project funds already released"}
	ErrInsufficientBalance      = &ContractError{4, "insufficient_balance", "no recorded balance to move"}
	ErrInvalidMilestones        = &ContractError{5, "invalid_milestones", "milestone set is invalid"}
	ErrNotAuthorized            = &ContractError{6, "not_authorized", "caller lacks the required role"}
	ErrInvalidGoal              = &ContractError{7, "invalid_goal", "goal must be positive and within bounds"}
	ErrAlreadyInitialized       = &ContractError{8, "already_initialized", "contract already initialized"}
	ErrRoleNotFound             = &ContractError{9, "role_not_found", "address holds no role"}
	ErrTooManyTokens            = &ContractError{10, "too_many_tokens", "accepted token list exceeds the maximum"}
	ErrInvalidAmount            = &ContractError{11, "invalid_amount", "amount must be positive"}
	ErrDuplicateToken           = &ContractError{12, "duplicate_token", "accepted token list contains duplicates"}
	ErrInvalidDeadline          = &ContractError{13, "invalid_deadline", "deadline must be in the future and within bounds"}
	ErrProjectExpired           = &ContractError{14, "project_expired", "project deadline has passed"}
	ErrProjectNotActive         = &ContractError{15, "project_not_active", "project is not accepting this operation"}
	ErrVerificationFailed       = &ContractError{16, "verification_failed", "submitted hash does not match the commitment"}
	ErrEmptyAcceptedTokens      = &ContractError{17, "empty_accepted_tokens", "accepted token list is empty"}
	ErrOverflow                 = &ContractError{18, "overflow", "arithmetic overflow"}
	ErrProtocolPaused           = &ContractError{19, "protocol_paused", "protocol is paused"}
	ErrTokenNotAccepted         = &ContractError{21, "token_not_accepted", "token is not accepted by this project"}
	ErrInvalidStateTransition   = &ContractError{22, "invalid_state_transition", "operation not allowed in current status"}
	ErrDeadlineOverflow         = &ContractError{23, "deadline_overflow", "deadline arithmetic overflowed"}
	ErrNotInitialized           = &ContractError{24, "not_initialized", "contract not initialized"}
)

// fail reverts the transaction with the error's symbol. The host rolls back
// every write and token movement issued so far.
func fail(e *ContractError) {
	sdk.Revert(e.Msg, e.Symbol)
}

// must is the entrypoint-side bridge from error values to a revert.
func must(e *ContractError) {
	if e != nil {
		fail(e)
	}
}

// checkedAdd guards balance arithmetic against int64 wrap.
func checkedAdd(a, b Amount) (Amount, *ContractError) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}
