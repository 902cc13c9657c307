////////////////////////////////////////////////////////////////////////////////
// PIFP Protocol: escrow + milestone release engine for impact funding
////////////////////////////////////////////////////////////////////////////////

package main

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxGoal bounds funding goals so later balance arithmetic cannot overflow int64.
	MaxGoal Amount = 1_000_000_000_000_000_000
	// MaxAcceptedTokens limits how many token types one project may escrow.
	MaxAcceptedTokens = 10
	// MaxDeadlineWindow is the farthest a deadline may sit in the future (5 years, seconds).
	MaxDeadlineWindow int64 = 157_680_000
	// ProofHashLength is the hex length of a 32-byte proof commitment.
	ProofHashLength = 64
)

// -----------------------------------------------------------------------------
// Counter / Flag Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds an integer counter for projects (used for generating dense IDs).
	ProjectsCount = "count:proj"
	// InitializedKey marks that contract_init has run.
	InitializedKey = "protocol:init"
	// PausedKey holds the protocol-wide pause flag.
	PausedKey = "protocol:paused"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kProjectConfig stores the immutable project record (creator, tokens, goal, commitment, deadline).
	kProjectConfig byte = 0x01
	// kProjectState stores the small mutable record (status, donation count) so hot paths rewrite fewer bytes.
	kProjectState byte = 0x02
	// kTokenBalance stores one pooled balance per (project, token).
	kTokenBalance byte = 0x03
	// kDonorContribution stores one deposit total per (project, token, donor) to back refunds.
	kDonorContribution byte = 0x04
	// kDonorSeen flags donors that already count towards a project's donation_count.
	kDonorSeen byte = 0x05
	// kRole houses one role assignment per address.
	kRole byte = 0x06
)
