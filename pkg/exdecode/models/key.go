// Package models defines the signal model a decode table compiles into.
package models

import "unique"

// SignalKey is an interned signal name. Keys compare and hash by value and
// share one copy of the underlying text.
type SignalKey struct {
	h unique.Handle[string]
}

// Key interns name.
func Key(name string) SignalKey {
	return SignalKey{h: unique.Make(name)}
}

// IsZero reports whether k was never assigned a name.
func (k SignalKey) IsZero() bool {
	return k == SignalKey{}
}

func (k SignalKey) String() string {
	if k.IsZero() {
		return ""
	}
	return k.h.Value()
}

// MarshalText renders the key as its name.
func (k SignalKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
