package main

import "strconv"

// UInt64ToString turns an id back into decimal text for logs or query returns.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// Int64ToString mirrors the helper above for signed amounts.
// Example payload: Int64ToString(-5)
func Int64ToString(val int64) string {
	return strconv.FormatInt(val, 10)
}
