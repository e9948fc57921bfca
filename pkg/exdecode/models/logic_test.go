package models

import "testing"

func TestLogicTreeString(t *testing.T) {
	op := NewSignal(Key("op"), 7, InputSource())
	funct3 := NewSignal(Key("funct3"), 3, InputSource())

	isOp := op.Unit().Equal(Unit(ConstantUint64(0b0110011, 7)))
	isAdd := funct3.Unit().Equal(Unit(ConstantUint64(0, 3)))

	tests := []struct {
		tree     LogicTree
		expected string
	}{
		{isOp, "(op == 7'b0110011)"},
		{isOp.And(isAdd), "((op == 7'b0110011) & (funct3 == 3'b000))"},
		{isOp.Or(isAdd.Not()), "((op == 7'b0110011) | ~(funct3 == 3'b000))"},
		{isOp.Ternary(funct3.Unit(), Unit(ConstantUint64(7, 3))), "((op == 7'b0110011) ? funct3 : 3'b111)"},
		{funct3.Unit().ShiftLeft(2), "(funct3 << 2)"},
		{funct3.Unit().ShiftRight(1), "(funct3 >> 1)"},
		{funct3.Unit().Add(funct3.Unit()).Sub(funct3.Unit()), "((funct3 + funct3) - funct3)"},
		{funct3.Unit().Mul(funct3.Unit()).Div(funct3.Unit()), "((funct3 * funct3) / funct3)"},
		{funct3.Unit().Xor(funct3.Unit()), "(funct3 ^ funct3)"},
		{funct3.Unit().NotEqual(funct3.Unit()), "(funct3 != funct3)"},
		{funct3.Unit().GreaterThan(funct3.Unit()), "(funct3 > funct3)"},
		{funct3.Unit().GreaterOrEqual(funct3.Unit()), "(funct3 >= funct3)"},
		{funct3.Unit().LessThan(funct3.Unit()), "(funct3 < funct3)"},
		{funct3.Unit().LessOrEqual(funct3.Unit()), "(funct3 <= funct3)"},
		{Combine(op.Unit(), funct3.Unit()), "{op, funct3}"},
	}

	for _, tt := range tests {
		if got := tt.tree.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestLogicTreeSharing(t *testing.T) {
	op := NewSignal(Key("op"), 7, InputSource())
	cond := op.Unit().Equal(Unit(ConstantUint64(3, 7)))

	a := cond.And(Unit(ConstantUint64(1, 1)))
	b := cond.Or(Unit(ConstantUint64(0, 1)))

	if !a.Operands()[0].Same(cond) || !b.Operands()[0].Same(cond) {
		t.Errorf("parents must share the operand node")
	}
	if a.Op() != OpAnd || b.Op() != OpOr {
		t.Errorf("unexpected operators %s, %s", a.Op(), b.Op())
	}
	if cond.String() != "(op == 7'b0000011)" {
		t.Errorf("operand changed after building parents: %s", cond)
	}

	ops := a.Operands()
	ops[0] = Unit(ConstantUint64(0, 1))
	if !a.Operands()[0].Same(cond) {
		t.Errorf("Operands must not expose the node's storage")
	}
}
