package models

import (
	"strings"

	"github.com/holiman/uint256"
)

// FormatBinary renders the low width bits of v, most significant first.
func FormatBinary(v *uint256.Int, width int) string {
	var b strings.Builder
	b.Grow(width)
	var bit uint256.Int
	for i := width - 1; i >= 0; i-- {
		if i < 256 && bit.Rsh(v, uint(i)).Uint64()&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Mask returns v truncated to its low width bits.
func Mask(v *uint256.Int, width int) *uint256.Int {
	if width >= 256 {
		return new(uint256.Int).Set(v)
	}
	one := uint256.NewInt(1)
	m := new(uint256.Int).Lsh(one, uint(width))
	m.Sub(m, one)
	return m.And(m, v)
}
