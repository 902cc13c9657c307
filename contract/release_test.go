package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pifp_protocol/sdk"
)

func TestVerifyReleasePaysCreator(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive;hbd")
	deposit(t, donorAlice, id, tokenHive, 700)
	deposit(t, donorBob, id, tokenHbd, 300)

	callAs(oracleAddr)
	ProjectsVerifyRelease(strptr(id + "|" + proofA))

	require.Equal(t, StatusCompleted, loadProjectState(0).Status)
	require.Equal(t, int64(700), sdk.GetBalance(managerAdr, tokenHive))
	require.Equal(t, int64(300), sdk.GetBalance(managerAdr, tokenHbd))
	require.Equal(t, int64(0), sdk.GetBalance(sdk.MockContractAddress, tokenHive))
	require.Equal(t, int64(0), sdk.GetBalance(sdk.MockContractAddress, tokenHbd))
	require.Equal(t, Amount(0), getTokenBalance(0, tokenHive))
	require.Equal(t, Amount(0), getTokenBalance(0, tokenHbd))
	require.True(t, hasLogPrefix("pv|id:0|"))
	require.True(t, hasLogPrefix("fr|id:0|tk:hive|am:700"))
	require.True(t, hasLogPrefix("fr|id:0|tk:hbd|am:300"))
}

func TestVerifyReleaseSkipsEmptyPools(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive;hbd")
	deposit(t, donorAlice, id, tokenHive, 100)

	callAs(oracleAddr)
	ProjectsVerifyRelease(strptr(id + "|" + proofA))

	// exactly one release line: the hbd pool was never funded
	require.True(t, hasLogPrefix("fr|id:0|tk:hive|"))
	require.False(t, hasLogPrefix("fr|id:0|tk:hbd|"))
}

func TestVerifyRequiresOracle(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive")
	deposit(t, donorAlice, id, tokenHive, 100)

	for _, caller := range []sdk.Address{superAdmin, adminAddr, managerAdr, auditorAdr, donorAlice} {
		callAs(caller)
		requireRevert(t, "not_authorized", func() {
			ProjectsVerifyRelease(strptr(id + "|" + proofA))
		})
	}
}

func TestVerifyWrongHashReverts(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive")
	deposit(t, donorAlice, id, tokenHive, 100)

	callAs(oracleAddr)
	requireRevert(t, "verification_failed", func() {
		ProjectsVerifyRelease(strptr(id + "|" + proofB))
	})
	// escrow untouched after the failed attempt
	require.Equal(t, Amount(100), getTokenBalance(0, tokenHive))
	require.Equal(t, StatusActive, loadProjectState(0).Status)
}

func TestVerifyTwiceReverts(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive")
	deposit(t, donorAlice, id, tokenHive, 100)

	callAs(oracleAddr)
	ProjectsVerifyRelease(strptr(id + "|" + proofA))
	callAs(oracleAddr)
	requireRevert(t, "milestone_already_released", func() {
		ProjectsVerifyRelease(strptr(id + "|" + proofA))
	})
}

func TestVerifyOnExpiredProjectReverts(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive")
	deposit(t, donorAlice, id, tokenHive, 100)

	advanceTo(200_001)
	callAs(donorBob)
	ProjectsExpire(strptr(id))

	callAs(oracleAddr)
	requireRevert(t, "project_not_found", func() {
		ProjectsVerifyRelease(strptr(id + "|" + proofA))
	})
}

func TestVerifyWithNoDepositsCompletes(t *testing.T) {
	setupContract(t)
	id := registerProject(t, 1000, 200_000, "hive")

	callAs(oracleAddr)
	ProjectsVerifyRelease(strptr(id + "|" + proofA))
	require.Equal(t, StatusCompleted, loadProjectState(0).Status)
	require.Empty(t, sdk.MockTransfers())
}
