package dsl

// Range is a bit range [High:Low] as written. No ordering is enforced.
type Range struct {
	High uint16
	Low  uint16
}

// Width returns High-Low+1.
func (r Range) Width() int {
	return int(r.High) - int(r.Low) + 1
}

// SignalRange parses "[H:L]".
func SignalRange(s string) (Range, string, error) {
	const rule = "signal range"
	rest, err := expect(rule, s, "[")
	if err != nil {
		return Range{}, s, err
	}
	h, rest, err := uint16Prefix(rule, rest)
	if err != nil {
		return Range{}, s, err
	}
	if rest, err = expect(rule, rest, ":"); err != nil {
		return Range{}, s, err
	}
	l, rest, err := uint16Prefix(rule, rest)
	if err != nil {
		return Range{}, s, err
	}
	if rest, err = expect(rule, rest, "]"); err != nil {
		return Range{}, s, err
	}
	return Range{High: h, Low: l}, rest, nil
}

// Declaration is a signal declared as "[H:L]name".
type Declaration struct {
	Range Range
	Name  string
}

// SignalDef parses "[H:L]name".
func SignalDef(s string) (Declaration, string, error) {
	r, rest, err := SignalRange(s)
	if err != nil {
		return Declaration{}, s, err
	}
	name, rest, err := Identifier(rest)
	if err != nil {
		return Declaration{}, s, err
	}
	return Declaration{Range: r, Name: name}, rest, nil
}

// Alias is a segment header "[H:L]" with an optional name.
type Alias struct {
	Range Range
	// Name is empty when the header carries no alias.
	Name string
}

// RangeAlias parses "[H:L]" optionally followed by an identifier.
func RangeAlias(s string) (Alias, string, error) {
	r, rest, err := SignalRange(s)
	if err != nil {
		return Alias{}, s, err
	}
	a := Alias{Range: r}
	if name, after, err := Identifier(rest); err == nil {
		a.Name, rest = name, after
	}
	return a, rest, nil
}

// Reference names a signal with optional bit selections, as in
// "inst", "inst[5]" or "inst[31:25|11:7]".
type Reference struct {
	Name string
	// Selections is nil when the reference has no brackets. A single bit
	// index is recorded with High == Low.
	Selections []Range
}

// SignalRef parses a signal reference.
func SignalRef(s string) (Reference, string, error) {
	const rule = "signal reference"
	name, rest, err := Identifier(s)
	if err != nil {
		return Reference{}, s, err
	}
	ref := Reference{Name: name}

	after, ok := tag(rest, "[")
	if !ok {
		return ref, rest, nil
	}
	for {
		h, r, err := uint16Prefix(rule, after)
		if err != nil {
			return Reference{}, s, err
		}
		sel := Range{High: h, Low: h}
		if r2, ok := tag(r, ":"); ok {
			l, r3, err := uint16Prefix(rule, r2)
			if err != nil {
				return Reference{}, s, err
			}
			sel.Low, r = l, r3
		}
		ref.Selections = append(ref.Selections, sel)

		if r2, ok := tag(r, "|"); ok {
			after = r2
			continue
		}
		if r2, ok := tag(r, "]"); ok {
			return ref, r2, nil
		}
		return Reference{}, s, syntaxError(rule, s, `expected "|" or "]"`)
	}
}
