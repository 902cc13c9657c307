package main

import (
	"fmt"
	"strconv"
	"strings"

	"pifp_protocol/sdk"
)

// decodeRegisterProjectArgs unpacks the pipe-delimited payload used for projects_register calls.
// Format: goal|deadline|proofHash|token1;token2
func decodeRegisterProjectArgs(payload *string) *RegisterProjectArgs {
	raw := unwrapPayload(payload, "register payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 4 {
		sdk.Abort("register payload requires goal|deadline|proofHash|tokens")
	}
	return &RegisterProjectArgs{
		Goal:           parseAmountField(parts[0], "goal"),
		Deadline:       parseIntField(parts[1], "deadline"),
		ProofHash:      parseHexHashField(parts[2]),
		AcceptedTokens: parseAssetListField(parts[3]),
	}
}

// decodeDepositArgs expects `projectId|token|amount` from donors.
func decodeDepositArgs(payload *string) *DepositArgs {
	raw := unwrapPayload(payload, "deposit payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 3 {
		sdk.Abort("deposit payload requires projectId|token|amount")
	}
	return &DepositArgs{
		ProjectID: parseUintField(parts[0], "project id"),
		Token:     parseAssetField(parts[1]),
		Amount:    parseAmountField(parts[2], "amount"),
	}
}

// decodeVerifyReleaseArgs expects `projectId|submittedHash` from the oracle.
func decodeVerifyReleaseArgs(payload *string) (uint64, string) {
	raw := unwrapPayload(payload, "verify payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("verify payload requires projectId|hash")
	}
	return parseUintField(parts[0], "project id"), parseHexHashField(parts[1])
}

// decodeRefundArgs expects `projectId|token` from the refunding donor.
func decodeRefundArgs(payload *string) (uint64, sdk.Asset) {
	raw := unwrapPayload(payload, "refund payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("refund payload requires projectId|token")
	}
	return parseUintField(parts[0], "project id"), parseAssetField(parts[1])
}

// decodeProjectIDArg handles the single-field payloads (expire, queries).
func decodeProjectIDArg(payload *string) uint64 {
	raw := unwrapPayload(payload, "project id missing")
	return parseUintField(raw, "project id")
}

// decodeAddressArg handles single-address payloads for role queries and transfers.
func decodeAddressArg(payload *string) sdk.Address {
	raw := unwrapPayload(payload, "address missing")
	return AddressFromString(strings.TrimSpace(raw))
}

// decodeGrantRoleArgs expects `target|role` where role is the lower-case name.
func decodeGrantRoleArgs(payload *string) (sdk.Address, Role) {
	raw := unwrapPayload(payload, "grant payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("grant payload requires target|role")
	}
	return AddressFromString(strings.TrimSpace(parts[0])), parseRoleField(parts[1])
}

// decodeProjectTokenArgs expects `projectId|token` for balance queries.
func decodeProjectTokenArgs(payload *string) (uint64, sdk.Asset) {
	raw := unwrapPayload(payload, "balance payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("balance payload requires projectId|token")
	}
	return parseUintField(parts[0], "project id"), parseAssetField(parts[1])
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is the uint variant used for ids.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseIntField handles signed values like unix timestamps.
func parseIntField(val string, field string) int64 {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAmountField parses raw token amounts in the asset's smallest unit.
func parseAmountField(val string, field string) Amount {
	return Amount(parseIntField(val, field))
}

// parseAssetField trims and lower-cases the ticker so key building stays canonical.
func parseAssetField(val string) sdk.Asset {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "" {
		sdk.Abort("token missing")
	}
	return AssetFromString(val)
}

// parseAssetListField splits the list by ';' and trims each ticker. Duplicate
// and count checks happen in validation, not here.
func parseAssetListField(val string) []sdk.Asset {
	val = strings.TrimSpace(val)
	if val == "" {
		return []sdk.Asset{}
	}
	raw := strings.Split(val, ";")
	tokens := make([]sdk.Asset, 0, len(raw))
	for _, part := range raw {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		tokens = append(tokens, AssetFromString(part))
	}
	return tokens
}

// parseHexHashField enforces the 64-char lowercase hex form of a 32-byte commitment.
func parseHexHashField(val string) string {
	val = strings.TrimSpace(val)
	if len(val) != ProofHashLength {
		sdk.Abort("proof hash must be 64 hex chars")
	}
	for i := 0; i < len(val); i++ {
		c := val[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		sdk.Abort("proof hash must be lowercase hex")
	}
	return val
}

// parseRoleField accepts the lower-case role names used in events and queries.
func parseRoleField(val string) Role {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "project_manager":
		return RoleProjectManager
	case "oracle":
		return RoleOracle
	case "auditor":
		return RoleAuditor
	case "admin":
		return RoleAdmin
	case "super_admin":
		return RoleSuperAdmin
	default:
		sdk.Abort("invalid role name")
	}
	return 0
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }
