package main

import "pifp_protocol/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// projectConfigKey builds the storage key for the immutable project record.
func projectConfigKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProjectConfig
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// projectStateKey uses prefix 0x02 so mutable state sits next to config but not collide.
func projectStateKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProjectState
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// tokenBalanceKey stores a single pooled balance in the project's multi-token escrow.
// Key format: kTokenBalance|projectID|token
func tokenBalanceKey(projectID uint64, token sdk.Asset) string {
	tokenStr := token.String()
	buf := make([]byte, 0, 1+8+len(tokenStr))
	buf = append(buf, kTokenBalance)
	buf = packU64LE(projectID, buf)
	buf = append(buf, tokenStr...)
	return string(buf)
}

// donorContributionKey mixes project id, token and donor so refunds find
// exactly one donor's slice without nested maps in host storage.
// Key format: kDonorContribution|projectID|token|0x00|donor
func donorContributionKey(projectID uint64, token sdk.Asset, donor sdk.Address) string {
	tokenStr := token.String()
	donorStr := AddressToString(donor)
	buf := make([]byte, 0, 1+8+len(tokenStr)+1+len(donorStr))
	buf = append(buf, kDonorContribution)
	buf = packU64LE(projectID, buf)
	buf = append(buf, tokenStr...)
	buf = append(buf, 0x00)
	buf = append(buf, donorStr...)
	return string(buf)
}

// donorSeenKey flags a donor as already counted in the project's donation_count.
func donorSeenKey(projectID uint64, donor sdk.Address) string {
	donorStr := AddressToString(donor)
	buf := make([]byte, 0, 1+8+len(donorStr))
	buf = append(buf, kDonorSeen)
	buf = packU64LE(projectID, buf)
	buf = append(buf, donorStr...)
	return string(buf)
}

// roleKey keeps one role assignment per address under its own prefix.
func roleKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kRole)
	buf = append(buf, addrStr...)
	return string(buf)
}
