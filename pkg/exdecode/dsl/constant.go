package dsl

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrConstantTooWide indicates a literal whose value needs more bits than declared.
var ErrConstantTooWide = errors.New("constant exceeds declared width")

// SizedConstant is a literal written as W'hHEX, W'dDEC or W'bBIN.
type SizedConstant struct {
	Width uint16
	Value uint256.Int
}

func (c SizedConstant) String() string {
	return fmt.Sprintf("%d'h%s", c.Width, c.Value.Hex()[2:])
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

var radixes = []struct {
	prefix string
	base   int
	accept func(byte) bool
}{
	{"'h", 16, isHexDigit},
	{"'d", 10, isDigit},
	{"'b", 2, isBinDigit},
}

// Constant parses a sized constant. The value's minimum bit width must not
// exceed the declared width; literals are limited to 256 bits.
func Constant(s string) (SizedConstant, string, error) {
	const rule = "constant"
	width, rest, err := uint16Prefix(rule, s)
	if err != nil {
		return SizedConstant{}, s, err
	}

	for _, r := range radixes {
		after, ok := tag(rest, r.prefix)
		if !ok {
			continue
		}
		num, after := digits(after, r.accept)
		if num == "" {
			return SizedConstant{}, s, syntaxError(rule, s, fmt.Sprintf("expected digits after %s", r.prefix))
		}
		b, ok := new(big.Int).SetString(num, r.base)
		if !ok {
			return SizedConstant{}, s, syntaxError(rule, s, "malformed digits")
		}
		v, overflow := uint256.FromBig(b)
		if overflow {
			return SizedConstant{}, s, syntaxError(rule, s, "literal exceeds 256 bits")
		}
		if v.BitLen() > int(width) {
			return SizedConstant{}, s, fmt.Errorf("%w: %q needs %d bits", ErrConstantTooWide, s, v.BitLen())
		}
		return SizedConstant{Width: width, Value: *v}, after, nil
	}
	return SizedConstant{}, s, syntaxError(rule, s, `expected "'h", "'d" or "'b"`)
}
