package dsl

import "fmt"

// DirectiveKind distinguishes the match-table column directives.
type DirectiveKind int

const (
	// DirectiveFlag is "#flag(prefix)".
	DirectiveFlag DirectiveKind = iota
	// DirectivePrimary is "#primary(prefix)".
	DirectivePrimary
)

func (k DirectiveKind) String() string {
	switch k {
	case DirectiveFlag:
		return "flag"
	case DirectivePrimary:
		return "primary"
	}
	return fmt.Sprintf("DirectiveKind(%d)", int(k))
}

// Directive is a column directive with its prefix.
type Directive struct {
	Kind   DirectiveKind
	Prefix string
}

func directive(kind DirectiveKind, open, s string) (Directive, string, error) {
	rule := "#" + kind.String()
	rest, err := expect(rule, s, open)
	if err != nil {
		return Directive{}, s, err
	}
	prefix, rest, err := Identifier(rest)
	if err != nil {
		return Directive{}, s, err
	}
	if rest, err = expect(rule, rest, ")"); err != nil {
		return Directive{}, s, err
	}
	return Directive{Kind: kind, Prefix: prefix}, rest, nil
}

// MatchCmd parses "#flag(prefix)" or "#primary(prefix)".
func MatchCmd(s string) (Directive, string, error) {
	if d, rest, err := directive(DirectiveFlag, "#flag(", s); err == nil {
		return d, rest, nil
	}
	if d, rest, err := directive(DirectivePrimary, "#primary(", s); err == nil {
		return d, rest, nil
	}
	return Directive{}, s, syntaxError("column directive", s, "expected #flag(prefix) or #primary(prefix)")
}

// ContentKind distinguishes what a data cell holds.
type ContentKind int

const (
	// ContentSignal is a signal reference.
	ContentSignal ContentKind = iota
	// ContentConstant is a sized constant.
	ContentConstant
)

// Content is the parsed value of a match-table data cell.
type Content struct {
	Kind     ContentKind
	Ref      Reference
	Constant SizedConstant
}

// MatchContent parses a data cell as a signal reference or, failing that, a
// sized constant.
func MatchContent(s string) (Content, string, error) {
	ref, rest, err := SignalRef(s)
	if err == nil {
		return Content{Kind: ContentSignal, Ref: ref}, rest, nil
	}
	if _, _, identErr := Identifier(s); identErr == nil {
		return Content{}, s, err
	}
	c, rest, err := Constant(s)
	if err != nil {
		return Content{}, s, err
	}
	return Content{Kind: ContentConstant, Constant: c}, rest, nil
}
