package models

import "fmt"

// SourceKind tags what drives a signal.
type SourceKind int

const (
	// SourceUnconnected is a declared signal nothing drives yet.
	SourceUnconnected SourceKind = iota
	// SourceInput is a module input.
	SourceInput
	// SourceWire is a bit selection of other signals.
	SourceWire
	// SourceLogic is a boolean/arithmetic expression.
	SourceLogic
)

func (k SourceKind) String() string {
	switch k {
	case SourceUnconnected:
		return "unconnected"
	case SourceInput:
		return "input"
	case SourceWire:
		return "wire"
	case SourceLogic:
		return "logic"
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

// Source is what drives a signal. Wire is set for SourceWire, Logic for SourceLogic.
type Source struct {
	Kind  SourceKind
	Wire  Wire
	Logic LogicTree
}

// Unconnected returns the empty source.
func Unconnected() Source {
	return Source{Kind: SourceUnconnected}
}

// InputSource marks a module input.
func InputSource() Source {
	return Source{Kind: SourceInput}
}

// FromWire drives a signal from w.
func FromWire(w Wire) Source {
	return Source{Kind: SourceWire, Wire: w}
}

// FromLogic drives a signal from t.
func FromLogic(t LogicTree) Source {
	return Source{Kind: SourceLogic, Logic: t}
}

func (s Source) String() string {
	switch s.Kind {
	case SourceWire:
		return s.Wire.String()
	case SourceLogic:
		return s.Logic.String()
	}
	return s.Kind.String()
}

// Signal is a named bit vector.
type Signal struct {
	Key    SignalKey
	Width  int
	Source Source
}

// NewSignal returns a signal of the given width driven by src.
func NewSignal(key SignalKey, width int, src Source) *Signal {
	return &Signal{Key: key, Width: width, Source: src}
}

func (s *Signal) check(r IndexRange) error {
	if !r.fits(s.Width) {
		return &IndexRangeError{Signal: s.Key, Width: s.Width, Range: r}
	}
	return nil
}

// Whole returns a wire over every bit of the signal.
func (s *Signal) Whole() Wire {
	return Wire{kind: WireIndependent, signal: s.Key, signalWidth: s.Width, ranges: []IndexRange{Bits(s.Width-1, 0)}}
}

// Range returns a wire over one contiguous range of the signal.
func (s *Signal) Range(r IndexRange) (Wire, error) {
	if err := s.check(r); err != nil {
		return Wire{}, err
	}
	return Wire{kind: WireIndependent, signal: s.Key, signalWidth: s.Width, ranges: []IndexRange{r}}, nil
}

// Single returns a width-1 wire over bit idx.
func (s *Signal) Single(idx int) (Wire, error) {
	return s.Range(Bit(idx))
}

// Multiple returns a wire concatenating ranges of the signal in the order given.
func (s *Signal) Multiple(ranges []IndexRange) (Wire, error) {
	if len(ranges) == 0 {
		return Wire{}, fmt.Errorf("%w: empty selection of %s", ErrIndexOutOfRange, s.Key)
	}
	for i, r := range ranges {
		if err := s.check(r); err != nil {
			return Wire{}, err
		}
		for _, prev := range ranges[:i] {
			if r.Low <= prev.High && prev.Low <= r.High {
				return Wire{}, fmt.Errorf("%w: %s selects %s and %s", ErrIndexOutOfRange, s.Key, prev, r)
			}
		}
	}
	return Wire{
		kind:        WireMultiple,
		signal:      s.Key,
		signalWidth: s.Width,
		ranges:      append([]IndexRange(nil), ranges...),
	}, nil
}

// Unit returns a logic leaf reading the whole signal.
func (s *Signal) Unit() LogicTree {
	return Unit(s.Whole())
}
