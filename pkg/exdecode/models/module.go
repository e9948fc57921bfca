package models

import "fmt"

// Module is the signal namespace of one compiled sheet.
type Module struct {
	inputs  []SignalKey
	outputs []SignalKey
	order   []SignalKey
	signals map[SignalKey]*Signal
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{signals: make(map[SignalKey]*Signal)}
}

// AddSignal registers s. A key may be registered only once.
func (m *Module) AddSignal(s *Signal) error {
	if s.Key.IsZero() {
		return fmt.Errorf("%w: empty signal name", ErrUnknownSignal)
	}
	if _, ok := m.signals[s.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSignal, s.Key)
	}
	m.signals[s.Key] = s
	m.order = append(m.order, s.Key)
	return nil
}

// NewSignal registers an unconnected signal.
func (m *Module) NewSignal(name string, width int) (*Signal, error) {
	s := NewSignal(Key(name), width, Unconnected())
	if err := m.AddSignal(s); err != nil {
		return nil, err
	}
	return s, nil
}

// NewInput registers a module input.
func (m *Module) NewInput(name string, width int) (*Signal, error) {
	s := NewSignal(Key(name), width, InputSource())
	if err := m.AddSignal(s); err != nil {
		return nil, err
	}
	m.inputs = append(m.inputs, s.Key)
	return s, nil
}

// NewOutput registers an unconnected module output.
func (m *Module) NewOutput(name string, width int) (*Signal, error) {
	s, err := m.NewSignal(name, width)
	if err != nil {
		return nil, err
	}
	m.outputs = append(m.outputs, s.Key)
	return s, nil
}

// Connect drives the unconnected signal key from src.
func (m *Module) Connect(key SignalKey, src Source) error {
	s, ok := m.signals[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSignal, key)
	}
	if s.Source.Kind != SourceUnconnected {
		return fmt.Errorf("%w: %s is driven by %s", ErrAlreadyConnected, key, s.Source.Kind)
	}
	s.Source = src
	return nil
}

// Signal returns the signal registered under key.
func (m *Module) Signal(key SignalKey) (*Signal, bool) {
	s, ok := m.signals[key]
	return s, ok
}

// Lookup returns the signal registered under name.
func (m *Module) Lookup(name string) (*Signal, error) {
	s, ok := m.signals[Key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignal, name)
	}
	return s, nil
}

// Len returns the number of registered signals.
func (m *Module) Len() int {
	return len(m.order)
}

// Inputs returns the declared inputs in declaration order.
func (m *Module) Inputs() []SignalKey {
	return append([]SignalKey(nil), m.inputs...)
}

// Outputs returns the declared outputs in declaration order.
func (m *Module) Outputs() []SignalKey {
	return append([]SignalKey(nil), m.outputs...)
}

// Signals returns every signal in registration order.
func (m *Module) Signals() []*Signal {
	out := make([]*Signal, len(m.order))
	for i, k := range m.order {
		out[i] = m.signals[k]
	}
	return out
}
