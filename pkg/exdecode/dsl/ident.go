// Package dsl parses the text of decode-table cells.
//
// Every parser consumes a prefix of its input and returns the unconsumed
// remainder. A parser that fails returns no partial result.
package dsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates text that does not match the expected rule.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports which rule failed and on what input.
type SyntaxError struct {
	Rule  string
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s in %q", e.Rule, e.Msg, e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxError(rule, input, msg string) error {
	return &SyntaxError{Rule: rule, Input: input, Msg: msg}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Identifier parses a letter or underscore followed by letters, digits and underscores.
func Identifier(s string) (string, string, error) {
	if s == "" || !(isLetter(s[0]) || s[0] == '_') {
		return "", s, syntaxError("identifier", s, "expected a letter or underscore")
	}
	i := 1
	for i < len(s) && (isLetter(s[i]) || isDigit(s[i]) || s[i] == '_') {
		i++
	}
	return s[:i], s[i:], nil
}

func tag(s, prefix string) (string, bool) {
	return strings.CutPrefix(s, prefix)
}

func expect(rule, s, prefix string) (string, error) {
	rest, ok := tag(s, prefix)
	if !ok {
		return s, syntaxError(rule, s, fmt.Sprintf("expected %q", prefix))
	}
	return rest, nil
}

func digits(s string, accept func(byte) bool) (string, string) {
	i := 0
	for i < len(s) && accept(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// uint16Prefix parses an unsigned decimal number that fits 16 bits.
func uint16Prefix(rule, s string) (uint16, string, error) {
	num, rest := digits(s, isDigit)
	if num == "" {
		return 0, s, syntaxError(rule, s, "expected a number")
	}
	v, err := strconv.ParseUint(num, 10, 16)
	if err != nil {
		return 0, s, syntaxError(rule, s, fmt.Sprintf("%s does not fit 16 bits", num))
	}
	return uint16(v), rest, nil
}
