package main

import "pifp_protocol/sdk"

// Amount is a raw token amount in the asset's smallest unit.
type Amount int64

// Role is a tagged enumeration; privileges compare through roleRank, not
// through any type hierarchy.
type Role uint32

const (
	RoleProjectManager Role = 1
	RoleOracle         Role = 2
	RoleAuditor        Role = 3
	RoleAdmin          Role = 4
	RoleSuperAdmin     Role = 5
)

// String prints the role as lower-case text for events, queries and logs.
// Example payload: RoleOracle.String()
func (r Role) String() string {
	switch r {
	case RoleProjectManager:
		return "project_manager"
	case RoleOracle:
		return "oracle"
	case RoleAuditor:
		return "auditor"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "super_admin"
	default:
		return "unknown"
	}
}

// roleRank orders roles for authorization checks: SuperAdmin > Admin > the
// three sibling roles. Siblings share a rank on purpose.
func roleRank(r Role) int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleProjectManager, RoleOracle, RoleAuditor:
		return 1
	default:
		return 0
	}
}

// ProjectStatus captures where a project sits in its lifecycle.
// Transitions only move forward; Completed and Expired are terminal.
type ProjectStatus uint8

const (
	StatusFunding   ProjectStatus = 0
	StatusActive    ProjectStatus = 1
	StatusCompleted ProjectStatus = 2
	StatusExpired   ProjectStatus = 3
)

// String prints the status as lower-case text for events and query output.
// Example payload: StatusActive.String()
func (s ProjectStatus) String() string {
	switch s {
	case StatusFunding:
		return "funding"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// ProjectConfig is the immutable half of a project, written once at
// registration and never touched again.
type ProjectConfig struct {
	ID             uint64
	Creator        sdk.Address
	AcceptedTokens []sdk.Asset
	Goal           Amount
	ProofHash      string // 32-byte commitment as lowercase hex
	Deadline       int64  // unix seconds
}

// ProjectState is the small mutable half, rewritten on deposits and
// lifecycle transitions.
type ProjectState struct {
	Status        ProjectStatus
	DonationCount uint64
}

// Project is the combined view handed out by queries; internally config and
// state stay separate records.
type Project struct {
	ID             uint64   `json:"id"`
	Creator        string   `json:"creator"`
	AcceptedTokens []string `json:"accepted_tokens"`
	Goal           int64    `json:"goal"`
	ProofHash      string   `json:"proof_hash"`
	Deadline       int64    `json:"deadline"`
	Status         string   `json:"status"`
	DonationCount  uint64   `json:"donation_count"`
}

// ProjectBalances is the query snapshot of every escrowed token pool.
type ProjectBalances struct {
	ProjectID uint64           `json:"project_id"`
	Balances  map[string]int64 `json:"balances"`
}

// combineProject folds the two storage records into the query view.
func combineProject(cfg *ProjectConfig, state *ProjectState) *Project {
	tokens := make([]string, 0, len(cfg.AcceptedTokens))
	for _, t := range cfg.AcceptedTokens {
		tokens = append(tokens, t.String())
	}
	return &Project{
		ID:             cfg.ID,
		Creator:        cfg.Creator.String(),
		AcceptedTokens: tokens,
		Goal:           int64(cfg.Goal),
		ProofHash:      cfg.ProofHash,
		Deadline:       cfg.Deadline,
		Status:         state.Status.String(),
		DonationCount:  state.DonationCount,
	}
}

// RegisterProjectArgs carries the parsed projects_register payload.
type RegisterProjectArgs struct {
	Goal           Amount
	Deadline       int64
	ProofHash      string
	AcceptedTokens []sdk.Asset
}

// DepositArgs carries the parsed projects_deposit payload.
type DepositArgs struct {
	ProjectID uint64
	Token     sdk.Asset
	Amount    Amount
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
