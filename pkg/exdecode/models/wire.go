package models

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// IndexRange is an inclusive bit range [High:Low].
type IndexRange struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

// Bits returns the range [high:low].
func Bits(high, low int) IndexRange {
	return IndexRange{High: high, Low: low}
}

// Bit returns the single-bit range [idx:idx].
func Bit(idx int) IndexRange {
	return IndexRange{High: idx, Low: idx}
}

// Len returns the number of bits covered.
func (r IndexRange) Len() int {
	return r.High - r.Low + 1
}

func (r IndexRange) fits(width int) bool {
	return r.Low >= 0 && r.Low <= r.High && r.High < width
}

func (r IndexRange) String() string {
	if r.High == r.Low {
		return fmt.Sprintf("[%d]", r.High)
	}
	return fmt.Sprintf("[%d:%d]", r.High, r.Low)
}

// WireKind tags the variant held by a Wire.
type WireKind int

const (
	// WireConstant is a literal value of fixed width.
	WireConstant WireKind = iota
	// WireIndependent is one contiguous range of a signal.
	WireIndependent
	// WireMultiple concatenates disjoint ranges of one signal, most significant first.
	WireMultiple
	// WireCompose concatenates other wires, most significant first.
	WireCompose
)

func (k WireKind) String() string {
	switch k {
	case WireConstant:
		return "constant"
	case WireIndependent:
		return "independent"
	case WireMultiple:
		return "multiple"
	case WireCompose:
		return "compose"
	}
	return fmt.Sprintf("WireKind(%d)", int(k))
}

// Wire is an immutable, bit-exact view over constants and signals.
type Wire struct {
	kind WireKind

	// constant
	value uint256.Int
	width int

	// independent, multiple
	signal      SignalKey
	signalWidth int
	ranges      []IndexRange

	// compose
	parts []Wire
}

// Constant returns a width-bit constant wire holding the low bits of value.
func Constant(value *uint256.Int, width int) Wire {
	return Wire{kind: WireConstant, value: *Mask(value, width), width: width}
}

// ConstantUint64 is Constant for small values.
func ConstantUint64(value uint64, width int) Wire {
	return Constant(uint256.NewInt(value), width)
}

// Compose concatenates parts, most significant first.
func Compose(parts ...Wire) Wire {
	return Wire{kind: WireCompose, parts: append([]Wire(nil), parts...)}
}

// Kind returns the variant of the wire.
func (w Wire) Kind() WireKind {
	return w.kind
}

// Signal returns the signal an independent or multiple wire reads from.
func (w Wire) Signal() SignalKey {
	return w.signal
}

// Ranges returns the selected bit ranges of an independent or multiple wire.
func (w Wire) Ranges() []IndexRange {
	return append([]IndexRange(nil), w.ranges...)
}

// Value returns the value of a constant wire.
func (w Wire) Value() *uint256.Int {
	return new(uint256.Int).Set(&w.value)
}

// Parts returns the components of a composed wire.
func (w Wire) Parts() []Wire {
	return append([]Wire(nil), w.parts...)
}

// Len returns the number of bits the wire carries.
func (w Wire) Len() int {
	switch w.kind {
	case WireConstant:
		return w.width
	case WireIndependent, WireMultiple:
		n := 0
		for _, r := range w.ranges {
			n += r.Len()
		}
		return n
	case WireCompose:
		n := 0
		for _, p := range w.parts {
			n += p.Len()
		}
		return n
	}
	return 0
}

func (w Wire) whole() bool {
	return w.kind == WireIndependent && w.ranges[0] == Bits(w.signalWidth-1, 0)
}

// Name returns an identifier form of the wire, used to derive signal names.
func (w Wire) Name() string {
	switch w.kind {
	case WireConstant:
		return fmt.Sprintf("const%d_%s", w.width, w.value.Hex()[2:])
	case WireIndependent, WireMultiple:
		if w.whole() {
			return w.signal.String()
		}
		parts := []string{w.signal.String()}
		for _, r := range w.ranges {
			if r.High == r.Low {
				parts = append(parts, fmt.Sprintf("%d", r.High))
			} else {
				parts = append(parts, fmt.Sprintf("%dto%d", r.High, r.Low))
			}
		}
		return strings.Join(parts, "_")
	case WireCompose:
		parts := make([]string, len(w.parts))
		for i, p := range w.parts {
			parts[i] = p.Name()
		}
		return strings.Join(parts, "_")
	}
	return ""
}

func (w Wire) String() string {
	switch w.kind {
	case WireConstant:
		return fmt.Sprintf("%d'b%s", w.width, FormatBinary(&w.value, w.width))
	case WireIndependent:
		if w.whole() {
			return w.signal.String()
		}
		return w.signal.String() + w.ranges[0].String()
	case WireMultiple:
		parts := make([]string, len(w.ranges))
		for i, r := range w.ranges {
			parts[i] = w.signal.String() + r.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case WireCompose:
		parts := make([]string, len(w.parts))
		for i, p := range w.parts {
			parts[i] = p.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}
