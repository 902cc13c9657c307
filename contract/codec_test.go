package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pifp_protocol/sdk"
)

func TestProjectConfigRoundtrip(t *testing.T) {
	cfg := &ProjectConfig{
		ID:             42,
		Creator:        AddressFromString("hive:creator"),
		AcceptedTokens: []sdk.Asset{tokenHive, tokenHbd},
		Goal:           123_456_789,
		ProofHash:      proofA,
		Deadline:       1_756_000_000,
	}
	decoded, err := DecodeProjectConfig(EncodeProjectConfig(cfg))
	require.NoError(t, err)
	require.Equal(t, cfg, decoded)
}

func TestProjectConfigRoundtripSingleToken(t *testing.T) {
	cfg := &ProjectConfig{
		ID:             1,
		Creator:        AddressFromString("hive:x"),
		AcceptedTokens: []sdk.Asset{tokenHive},
		Goal:           1,
		ProofHash:      proofB,
		Deadline:       200_000,
	}
	decoded, err := DecodeProjectConfig(EncodeProjectConfig(cfg))
	require.NoError(t, err)
	require.Equal(t, cfg, decoded)
}

func TestProjectStateRoundtrip(t *testing.T) {
	for _, status := range []ProjectStatus{StatusFunding, StatusActive, StatusCompleted, StatusExpired} {
		state := &ProjectState{Status: status, DonationCount: 7}
		decoded, err := DecodeProjectState(EncodeProjectState(state))
		require.NoError(t, err)
		require.Equal(t, state, decoded)
	}
}

func TestDecodeRejectsTruncatedBytes(t *testing.T) {
	cfg := &ProjectConfig{
		ID:             9,
		Creator:        AddressFromString("hive:y"),
		AcceptedTokens: []sdk.Asset{tokenHive},
		Goal:           10,
		ProofHash:      proofA,
		Deadline:       200_000,
	}
	full := EncodeProjectConfig(cfg)
	_, err := DecodeProjectConfig(full[:len(full)-4])
	require.Error(t, err)

	_, err = DecodeProjectState(nil)
	require.Error(t, err)
}

func TestStorageKeysAreDistinct(t *testing.T) {
	all := []string{
		projectConfigKey(1),
		projectConfigKey(2),
		projectStateKey(1),
		tokenBalanceKey(1, tokenHive),
		tokenBalanceKey(1, tokenHbd),
		tokenBalanceKey(2, tokenHive),
		donorContributionKey(1, tokenHive, donorAlice),
		donorContributionKey(1, tokenHive, donorBob),
		donorContributionKey(1, tokenHbd, donorAlice),
		donorSeenKey(1, donorAlice),
		roleKey(donorAlice),
	}
	seen := map[string]bool{}
	for _, k := range all {
		seen[k] = true
	}
	require.Len(t, seen, len(all))
}
