// Package safeconv provides integer conversions that panic on overflow
// instead of silently truncating.
package safeconv

// maxInt is the largest value an int can hold on this platform.
const maxInt = int(^uint(0) >> 1)

// MustUintToInt converts uint to int, panicking on overflow. Use only when
// overflow is logically impossible, such as source positions.
func MustUintToInt(value uint) int {
	if value > uint(maxInt) {
		panic("safeconv: uint to int overflow")
	}

	return int(value)
}
