package main

import (
	"strconv"

	"pifp_protocol/sdk"
)

// roleOf reads the stored role for an address, zero when none was ever granted.
func roleOf(addr sdk.Address) Role {
	ptr := sdk.StateGetObject(roleKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 32)
	return Role(n)
}

// setRole writes a single role assignment; each address holds at most one role.
func setRole(addr sdk.Address, role Role) {
	sdk.StateSetObject(roleKey(addr), strconv.FormatUint(uint64(role), 10))
}

// clearRole deletes the assignment entirely so roleOf reports zero again.
func clearRole(addr sdk.Address) {
	sdk.StateDeleteObject(roleKey(addr))
}

// hasRole reports whether the address holds exactly the given role.
func hasRole(addr sdk.Address, role Role) bool {
	return roleOf(addr) == role
}

// requireAdminOrAbove gates administrative operations (grants, pause).
func requireAdminOrAbove(addr sdk.Address) {
	if roleRank(roleOf(addr)) < roleRank(RoleAdmin) {
		fail(ErrNotAuthorized)
	}
}

// requireSuperAdmin gates the operations only the single root account may run.
func requireSuperAdmin(addr sdk.Address) {
	if roleOf(addr) != RoleSuperAdmin {
		fail(ErrNotAuthorized)
	}
}

// requireCanRegister lets project managers and the admin tier create projects.
func requireCanRegister(addr sdk.Address) {
	r := roleOf(addr)
	if r == RoleProjectManager || roleRank(r) >= roleRank(RoleAdmin) {
		return
	}
	fail(ErrNotAuthorized)
}

// requireOracle gates verification; only the oracle role may attest proofs.
func requireOracle(addr sdk.Address) {
	if roleOf(addr) != RoleOracle {
		fail(ErrNotAuthorized)
	}
}
