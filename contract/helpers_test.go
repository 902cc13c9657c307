package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pifp_protocol/sdk"
)

// Shared test plumbing. Every simulated call bumps the tx id so the env cache
// refreshes, mirroring how the host hands each transaction a fresh snapshot.

var testTxCounter int

const (
	superAdmin = sdk.Address("hive:root")
	adminAddr  = sdk.Address("hive:admin")
	managerAdr = sdk.Address("hive:manager")
	oracleAddr = sdk.Address("hive:oracle")
	auditorAdr = sdk.Address("hive:auditor")
	donorAlice = sdk.Address("hive:alice")
	donorBob   = sdk.Address("hive:bob")

	tokenHive = sdk.Asset("hive")
	tokenHbd  = sdk.Asset("hbd")

	proofA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	proofB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

// callAs switches the mock sender and busts the per-tx env cache.
func callAs(addr sdk.Address) {
	testTxCounter++
	sdk.MockSetTxID(fmt.Sprintf("tx-%d", testTxCounter))
	sdk.MockSetSender(addr)
	sdk.MockSetIntents(nil)
}

// advanceTo moves the mock block clock; the next call sees the new time.
func advanceTo(ts int64) {
	testTxCounter++
	sdk.MockSetTxID(fmt.Sprintf("tx-%d", testTxCounter))
	sdk.MockSetTimestamp(ts)
}

// setupContract resets the host and initializes with the standard role set.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	sdk.MockSetTimestamp(100_000)
	callAs(superAdmin)
	ContractInit(nil)
	callAs(superAdmin)
	RolesGrant(strptr(string(adminAddr) + "|admin"))
	callAs(superAdmin)
	RolesGrant(strptr(string(managerAdr) + "|project_manager"))
	callAs(superAdmin)
	RolesGrant(strptr(string(oracleAddr) + "|oracle"))
	callAs(superAdmin)
	RolesGrant(strptr(string(auditorAdr) + "|auditor"))
}

// registerProject creates a standard project as the manager and returns its id.
func registerProject(t *testing.T, goal int64, deadline int64, tokens string) string {
	t.Helper()
	callAs(managerAdr)
	res := ProjectsRegister(strptr(fmt.Sprintf("%d|%d|%s|%s", goal, deadline, proofA, tokens)))
	require.NotNil(t, res)
	return *res
}

// deposit funds a project as the given donor, minting and allowing on the fly.
func deposit(t *testing.T, donor sdk.Address, projectID string, token sdk.Asset, amount int64) {
	t.Helper()
	sdk.MockMint(donor, token, amount)
	callAs(donor)
	sdk.MockAllowTransfer(amount, token)
	ProjectsDeposit(strptr(fmt.Sprintf("%s|%s|%d", projectID, token.String(), amount)))
}

// requireRevert asserts fn reverts with the given symbol.
func requireRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q, got none", symbol)
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok, "expected RevertError, got %v", r)
		require.Equal(t, symbol, revertErr.Symbol)
	}()
	fn()
}

// hasLogPrefix reports whether any emitted log line starts with the prefix.
func hasLogPrefix(prefix string) bool {
	for _, line := range sdk.MockLogs() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
