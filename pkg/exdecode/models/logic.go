package models

import (
	"fmt"
	"strings"
)

// Op is the operator of a logic node.
type Op int

// Logic operators.
const (
	OpUnit Op = iota
	OpCombine
	OpNot
	OpAnd
	OpOr
	OpXor
	OpTernary
	OpShiftLeft
	OpShiftRight
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpLessThan
	OpLessOrEqual
)

var opNames = map[Op]string{
	OpUnit:           "unit",
	OpCombine:        "combine",
	OpNot:            "not",
	OpAnd:            "and",
	OpOr:             "or",
	OpXor:            "xor",
	OpTernary:        "ternary",
	OpShiftLeft:      "shl",
	OpShiftRight:     "shr",
	OpAdd:            "add",
	OpSub:            "sub",
	OpMul:            "mul",
	OpDiv:            "div",
	OpEqual:          "eq",
	OpNotEqual:       "ne",
	OpGreaterThan:    "gt",
	OpGreaterOrEqual: "ge",
	OpLessThan:       "lt",
	OpLessOrEqual:    "le",
}

var opSymbols = map[Op]string{
	OpAnd:            "&",
	OpOr:             "|",
	OpXor:            "^",
	OpShiftLeft:      "<<",
	OpShiftRight:     ">>",
	OpAdd:            "+",
	OpSub:            "-",
	OpMul:            "*",
	OpDiv:            "/",
	OpEqual:          "==",
	OpNotEqual:       "!=",
	OpGreaterThan:    ">",
	OpGreaterOrEqual: ">=",
	OpLessThan:       "<",
	OpLessOrEqual:    "<=",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

type logicNode struct {
	op       Op
	wire     Wire
	operands []LogicTree
	amount   int
}

// LogicTree is an immutable expression. Copies share the same node, so a
// sub-expression can be an operand of any number of parents.
type LogicTree struct {
	n *logicNode
}

func node(op Op, operands ...LogicTree) LogicTree {
	return LogicTree{n: &logicNode{op: op, operands: operands}}
}

// Unit returns a leaf reading w.
func Unit(w Wire) LogicTree {
	return LogicTree{n: &logicNode{op: OpUnit, wire: w}}
}

// Combine groups trees into one n-ary node.
func Combine(trees ...LogicTree) LogicTree {
	return node(OpCombine, append([]LogicTree(nil), trees...)...)
}

// IsZero reports whether t was never built.
func (t LogicTree) IsZero() bool {
	return t.n == nil
}

// Same reports whether t and u share the same node.
func (t LogicTree) Same(u LogicTree) bool {
	return t.n == u.n
}

// Op returns the operator at the root of t.
func (t LogicTree) Op() Op {
	return t.n.op
}

// Wire returns the wire of a unit leaf.
func (t LogicTree) Wire() Wire {
	return t.n.wire
}

// Operands returns the children of t.
func (t LogicTree) Operands() []LogicTree {
	return append([]LogicTree(nil), t.n.operands...)
}

// Amount returns the shift distance of a shift node.
func (t LogicTree) Amount() int {
	return t.n.amount
}

func (t LogicTree) Not() LogicTree            { return node(OpNot, t) }
func (t LogicTree) And(u LogicTree) LogicTree { return node(OpAnd, t, u) }
func (t LogicTree) Or(u LogicTree) LogicTree  { return node(OpOr, t, u) }
func (t LogicTree) Xor(u LogicTree) LogicTree { return node(OpXor, t, u) }
func (t LogicTree) Add(u LogicTree) LogicTree { return node(OpAdd, t, u) }
func (t LogicTree) Sub(u LogicTree) LogicTree { return node(OpSub, t, u) }
func (t LogicTree) Mul(u LogicTree) LogicTree { return node(OpMul, t, u) }
func (t LogicTree) Div(u LogicTree) LogicTree { return node(OpDiv, t, u) }

func (t LogicTree) Equal(u LogicTree) LogicTree          { return node(OpEqual, t, u) }
func (t LogicTree) NotEqual(u LogicTree) LogicTree       { return node(OpNotEqual, t, u) }
func (t LogicTree) GreaterThan(u LogicTree) LogicTree    { return node(OpGreaterThan, t, u) }
func (t LogicTree) GreaterOrEqual(u LogicTree) LogicTree { return node(OpGreaterOrEqual, t, u) }
func (t LogicTree) LessThan(u LogicTree) LogicTree       { return node(OpLessThan, t, u) }
func (t LogicTree) LessOrEqual(u LogicTree) LogicTree    { return node(OpLessOrEqual, t, u) }

// Ternary selects then when t is true and otherwise els.
func (t LogicTree) Ternary(then, els LogicTree) LogicTree {
	return node(OpTernary, t, then, els)
}

// ShiftLeft shifts t left by n bits.
func (t LogicTree) ShiftLeft(n int) LogicTree {
	s := node(OpShiftLeft, t)
	s.n.amount = n
	return s
}

// ShiftRight shifts t right by n bits, filling with zeros.
func (t LogicTree) ShiftRight(n int) LogicTree {
	s := node(OpShiftRight, t)
	s.n.amount = n
	return s
}

// String renders t as a fully parenthesized expression.
func (t LogicTree) String() string {
	if t.n == nil {
		return ""
	}
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t LogicTree) write(b *strings.Builder) {
	n := t.n
	switch n.op {
	case OpUnit:
		b.WriteString(n.wire.String())
	case OpNot:
		b.WriteString("~")
		n.operands[0].write(b)
	case OpShiftLeft, OpShiftRight:
		b.WriteString("(")
		n.operands[0].write(b)
		fmt.Fprintf(b, " %s %d)", opSymbols[n.op], n.amount)
	case OpTernary:
		b.WriteString("(")
		n.operands[0].write(b)
		b.WriteString(" ? ")
		n.operands[1].write(b)
		b.WriteString(" : ")
		n.operands[2].write(b)
		b.WriteString(")")
	case OpCombine:
		b.WriteString("{")
		for i, o := range n.operands {
			if i > 0 {
				b.WriteString(", ")
			}
			o.write(b)
		}
		b.WriteString("}")
	default:
		b.WriteString("(")
		n.operands[0].write(b)
		fmt.Fprintf(b, " %s ", opSymbols[n.op])
		n.operands[1].write(b)
		b.WriteString(")")
	}
}
