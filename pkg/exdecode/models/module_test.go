package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModuleRegistration(t *testing.T) {
	m := NewModule()

	if _, err := m.NewInput("inst", 32); err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}
	if _, err := m.NewOutput("alu_add", 1); err != nil {
		t.Fatalf("NewOutput failed: %v", err)
	}
	if _, err := m.NewSignal("imm", 12); err != nil {
		t.Fatalf("NewSignal failed: %v", err)
	}

	if _, err := m.NewSignal("inst", 32); !errors.Is(err, ErrDuplicateSignal) {
		t.Errorf("duplicate registration error = %v, expected ErrDuplicateSignal", err)
	}

	var names []string
	for _, s := range m.Signals() {
		names = append(names, s.Key.String())
	}
	if diff := cmp.Diff([]string{"inst", "alu_add", "imm"}, names); diff != "" {
		t.Errorf("registration order mismatch (-want +got):\n%s", diff)
	}

	if got := m.Inputs(); len(got) != 1 || got[0] != Key("inst") {
		t.Errorf("Inputs() = %v", got)
	}
	if got := m.Outputs(); len(got) != 1 || got[0] != Key("alu_add") {
		t.Errorf("Outputs() = %v", got)
	}

	s, err := m.Lookup("inst")
	if err != nil || s.Source.Kind != SourceInput || s.Width != 32 {
		t.Errorf("Lookup(inst) = %+v, %v", s, err)
	}
	if _, err := m.Lookup("missing"); !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("Lookup(missing) error = %v, expected ErrUnknownSignal", err)
	}
}

func TestModuleConnect(t *testing.T) {
	m := NewModule()
	out, err := m.NewOutput("alu_add", 1)
	if err != nil {
		t.Fatalf("NewOutput failed: %v", err)
	}

	expr := Unit(ConstantUint64(1, 1))
	if err := m.Connect(out.Key, FromLogic(expr)); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if !out.Source.Logic.Same(expr) {
		t.Errorf("Connect did not install the expression")
	}
	if err := m.Connect(out.Key, FromLogic(expr)); !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("second Connect error = %v, expected ErrAlreadyConnected", err)
	}
	if err := m.Connect(Key("missing"), FromLogic(expr)); !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("Connect(missing) error = %v, expected ErrUnknownSignal", err)
	}
}

func TestSignalKeyInterning(t *testing.T) {
	a := Key("op_is_0110011")
	b := Key("op_" + "is_0110011")
	if a != b {
		t.Errorf("keys with equal names must compare equal")
	}
	seen := map[SignalKey]int{a: 1}
	if seen[b] != 1 {
		t.Errorf("keys with equal names must hash equal")
	}
	if (SignalKey{}).String() != "" || !(SignalKey{}).IsZero() {
		t.Errorf("zero key must render empty")
	}
}
