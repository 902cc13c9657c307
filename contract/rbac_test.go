package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pifp_protocol/sdk"
)

func TestInitSetsSuperAdmin(t *testing.T) {
	sdk.MockReset()
	callAs(superAdmin)
	ContractInit(nil)
	require.Equal(t, RoleSuperAdmin, roleOf(superAdmin))
	require.True(t, hasLogPrefix("ci|"))
}

func TestInitTwiceReverts(t *testing.T) {
	sdk.MockReset()
	callAs(superAdmin)
	ContractInit(nil)
	callAs(superAdmin)
	requireRevert(t, "already_initialized", func() {
		ContractInit(nil)
	})
}

func TestOpsBeforeInitRevert(t *testing.T) {
	sdk.MockReset()
	callAs(superAdmin)
	requireRevert(t, "not_initialized", func() {
		ProjectsRegister(strptr("1000|200000|" + proofA + "|hive"))
	})
}

func TestSuperAdminCanGrantAdmin(t *testing.T) {
	setupContract(t)
	require.Equal(t, RoleAdmin, roleOf(adminAddr))
}

func TestAdminCanGrantSiblings(t *testing.T) {
	setupContract(t)
	target := sdk.Address("hive:newpm")
	callAs(adminAddr)
	RolesGrant(strptr(string(target) + "|project_manager"))
	require.Equal(t, RoleProjectManager, roleOf(target))
}

func TestAdminCanGrantAdmin(t *testing.T) {
	setupContract(t)
	target := sdk.Address("hive:secondadmin")
	callAs(adminAddr)
	RolesGrant(strptr(string(target) + "|admin"))
	require.Equal(t, RoleAdmin, roleOf(target))
}

func TestAdminCannotGrantSuperAdmin(t *testing.T) {
	setupContract(t)
	callAs(adminAddr)
	requireRevert(t, "not_authorized", func() {
		RolesGrant(strptr("hive:impostor|super_admin"))
	})
}

func TestSiblingsCannotGrant(t *testing.T) {
	setupContract(t)
	callAs(managerAdr)
	requireRevert(t, "not_authorized", func() {
		RolesGrant(strptr("hive:target|auditor"))
	})
	callAs(oracleAddr)
	requireRevert(t, "not_authorized", func() {
		RolesGrant(strptr("hive:target|auditor"))
	})
}

func TestSetOracle(t *testing.T) {
	setupContract(t)
	target := sdk.Address("hive:oracle2")
	callAs(adminAddr)
	RolesSetOracle(strptr(string(target)))
	require.Equal(t, RoleOracle, roleOf(target))
	require.True(t, hasLogPrefix("rg|to:hive:oracle2|r:oracle|"))

	// same gate as roles_grant: admin tier only, and never over the root seat
	callAs(managerAdr)
	requireRevert(t, "not_authorized", func() {
		RolesSetOracle(strptr("hive:target"))
	})
	callAs(adminAddr)
	requireRevert(t, "not_authorized", func() {
		RolesSetOracle(strptr(string(superAdmin)))
	})
}

func TestRevokeAdmin(t *testing.T) {
	setupContract(t)
	callAs(superAdmin)
	RolesRevoke(strptr(string(adminAddr)))
	require.Equal(t, Role(0), roleOf(adminAddr))
}

func TestRevokeUnknownRoleReverts(t *testing.T) {
	setupContract(t)
	callAs(adminAddr)
	requireRevert(t, "role_not_found", func() {
		RolesRevoke(strptr("hive:nobody"))
	})
}

func TestCannotRevokeSuperAdmin(t *testing.T) {
	setupContract(t)
	callAs(adminAddr)
	requireRevert(t, "not_authorized", func() {
		RolesRevoke(strptr(string(superAdmin)))
	})
	callAs(superAdmin)
	requireRevert(t, "not_authorized", func() {
		RolesRevoke(strptr(string(superAdmin)))
	})
}

func TestSiblingsCannotRevoke(t *testing.T) {
	setupContract(t)
	callAs(managerAdr)
	requireRevert(t, "not_authorized", func() {
		RolesRevoke(strptr(string(auditorAdr)))
	})
}

func TestTransferSuperAdmin(t *testing.T) {
	setupContract(t)
	successor := sdk.Address("hive:successor")
	callAs(superAdmin)
	RolesTransferSuperAdmin(strptr(string(successor)))
	require.Equal(t, RoleSuperAdmin, roleOf(successor))
	require.Equal(t, Role(0), roleOf(superAdmin))
}

func TestTransferSuperAdminRequiresSeat(t *testing.T) {
	setupContract(t)
	callAs(adminAddr)
	requireRevert(t, "not_authorized", func() {
		RolesTransferSuperAdmin(strptr("hive:anyone"))
	})
}

func TestGrantSuperAdminBySuperAdminMovesSeat(t *testing.T) {
	setupContract(t)
	successor := sdk.Address("hive:heir")
	callAs(superAdmin)
	RolesGrant(strptr(string(successor) + "|super_admin"))
	require.Equal(t, RoleSuperAdmin, roleOf(successor))
	require.Equal(t, Role(0), roleOf(superAdmin))
}

func TestGrantCannotOverwriteSuperAdmin(t *testing.T) {
	setupContract(t)
	callAs(adminAddr)
	requireRevert(t, "not_authorized", func() {
		RolesGrant(strptr(string(superAdmin) + "|auditor"))
	})
}

func TestRoleQueries(t *testing.T) {
	setupContract(t)
	res := RolesGet(strptr(string(oracleAddr)))
	require.Equal(t, "oracle", *res)

	has := RolesHas(strptr(string(oracleAddr) + "|oracle"))
	require.Equal(t, "true", *has)
	hasNot := RolesHas(strptr(string(oracleAddr) + "|admin"))
	require.Equal(t, "false", *hasNot)

	requireRevert(t, "role_not_found", func() {
		RolesGet(strptr("hive:stranger"))
	})
}
