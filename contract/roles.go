package main

// Role management entrypoints. Each address holds at most one role; grants
// overwrite, revokes delete. The SuperAdmin seat is unique and only moves
// through the explicit transfer below.

// RolesGrant assigns a role to the target address. Admins and the SuperAdmin
// may grant; only the SuperAdmin may mint SuperAdmin, and doing so moves the
// seat atomically just like roles_transfer_super_admin.
// Example payload: "hive:bob|oracle"
//
//go:wasmexport roles_grant
func RolesGrant(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireAdminOrAbove(sender)
	target, role := decodeGrantRoleArgs(payload)
	if role == RoleSuperAdmin {
		requireSuperAdmin(sender)
		if target != sender {
			clearRole(sender)
			setRole(target, RoleSuperAdmin)
		}
		emitRoleGrantedEvent(AddressToString(target), role, AddressToString(sender))
		return strptr("granted")
	}
	if roleOf(target) == RoleSuperAdmin {
		// grants overwrite, and nothing may silently demote the root seat
		fail(ErrNotAuthorized)
	}
	setRole(target, role)
	emitRoleGrantedEvent(AddressToString(target), role, AddressToString(sender))
	return strptr("granted")
}

// RolesSetOracle grants the Oracle role to the target, a fixed-role shorthand
// for roles_grant kept for verifier tooling.
// Example payload: "hive:oracle2"
//
//go:wasmexport roles_set_oracle
func RolesSetOracle(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireAdminOrAbove(sender)
	target := decodeAddressArg(payload)
	if roleOf(target) == RoleSuperAdmin {
		fail(ErrNotAuthorized)
	}
	setRole(target, RoleOracle)
	emitRoleGrantedEvent(AddressToString(target), RoleOracle, AddressToString(sender))
	return strptr("granted")
}

// RolesRevoke removes whatever role the target holds. Admins and the
// SuperAdmin may revoke, but nobody strips the SuperAdmin this way; the seat
// only moves through roles_transfer_super_admin.
// Example payload: "hive:bob"
//
//go:wasmexport roles_revoke
func RolesRevoke(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireAdminOrAbove(sender)
	target := decodeAddressArg(payload)
	current := roleOf(target)
	if current == 0 {
		fail(ErrRoleNotFound)
	}
	if current == RoleSuperAdmin {
		fail(ErrNotAuthorized)
	}
	clearRole(target)
	emitRoleRevokedEvent(AddressToString(target), AddressToString(sender))
	return strptr("revoked")
}

// RolesTransferSuperAdmin hands the root seat to the target in one atomic
// step: the caller drops to no role, the target becomes SuperAdmin.
// Example payload: "hive:successor"
//
//go:wasmexport roles_transfer_super_admin
func RolesTransferSuperAdmin(payload *string) *string {
	requireInitialized()
	requireNotPaused()
	sender := getSenderAddress()
	requireSuperAdmin(sender)
	target := decodeAddressArg(payload)
	if target == sender {
		return strptr("transferred")
	}
	clearRole(sender)
	setRole(target, RoleSuperAdmin)
	emitRoleGrantedEvent(AddressToString(target), RoleSuperAdmin, AddressToString(sender))
	return strptr("transferred")
}

// RolesGet returns the target's role name, reverting when none is held.
// Example payload: "hive:bob"
//
//go:wasmexport roles_get
func RolesGet(payload *string) *string {
	target := decodeAddressArg(payload)
	role := roleOf(target)
	if role == 0 {
		fail(ErrRoleNotFound)
	}
	return strptr(role.String())
}

// RolesHas reports "true"/"false" for an exact role match without reverting.
// Example payload: "hive:bob|oracle"
//
//go:wasmexport roles_has
func RolesHas(payload *string) *string {
	target, role := decodeGrantRoleArgs(payload)
	if hasRole(target, role) {
		return strptr("true")
	}
	return strptr("false")
}
