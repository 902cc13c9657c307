package main

import (
	"strconv"

	"pifp_protocol/sdk"
)

// Escrow bookkeeping. Every pooled balance and per-donor contribution lives
// under its own key as a decimal string, so refunds and releases read exactly
// the records they touch.

// readAmountAt loads a decimal-string amount, defaulting to zero for missing keys.
func readAmountAt(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return Amount(n)
}

// writeAmountAt persists the amount, deleting the entry when it drops to zero.
func writeAmountAt(key string, amount Amount) {
	if amount == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, strconv.FormatInt(int64(amount), 10))
}

// getTokenBalance reads one pooled escrow balance.
func getTokenBalance(projectID uint64, token sdk.Asset) Amount {
	return readAmountAt(tokenBalanceKey(projectID, token))
}

// addTokenBalance grows the pool with overflow protection.
func addTokenBalance(projectID uint64, token sdk.Asset, amount Amount) *ContractError {
	key := tokenBalanceKey(projectID, token)
	sum, err := checkedAdd(readAmountAt(key), amount)
	if err != nil {
		return err
	}
	writeAmountAt(key, sum)
	return nil
}

// subTokenBalance shrinks the pool; callers verify the amount fits first.
func subTokenBalance(projectID uint64, token sdk.Asset, amount Amount) {
	key := tokenBalanceKey(projectID, token)
	writeAmountAt(key, readAmountAt(key)-amount)
}

// drainTokenBalance zeroes one pool and returns what it held. Settlement
// zeroes the record before any transfer so a host failure cannot double-pay.
func drainTokenBalance(projectID uint64, token sdk.Asset) Amount {
	key := tokenBalanceKey(projectID, token)
	amount := readAmountAt(key)
	if amount > 0 {
		sdk.StateDeleteObject(key)
	}
	return amount
}

// getDonorContribution reads one donor's running deposit total for a token.
func getDonorContribution(projectID uint64, token sdk.Asset, donor sdk.Address) Amount {
	return readAmountAt(donorContributionKey(projectID, token, donor))
}

// addDonorContribution grows the donor's slice with overflow protection.
func addDonorContribution(projectID uint64, token sdk.Asset, donor sdk.Address, amount Amount) *ContractError {
	key := donorContributionKey(projectID, token, donor)
	sum, err := checkedAdd(readAmountAt(key), amount)
	if err != nil {
		return err
	}
	writeAmountAt(key, sum)
	return nil
}

// clearDonorContribution zeroes the donor's slice so a second refund finds nothing.
func clearDonorContribution(projectID uint64, token sdk.Asset, donor sdk.Address) {
	sdk.StateDeleteObject(donorContributionKey(projectID, token, donor))
}

// hasDonated reports whether the donor already counts towards donation_count.
func hasDonated(projectID uint64, donor sdk.Address) bool {
	ptr := sdk.StateGetObject(donorSeenKey(projectID, donor))
	return ptr != nil && *ptr == "1"
}

// markDonated flags the donor as counted for this project.
func markDonated(projectID uint64, donor sdk.Address) {
	sdk.StateSetObject(donorSeenKey(projectID, donor), "1")
}
