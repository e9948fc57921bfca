package matchtable

import (
	"fmt"
	"slices"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
	"github.com/xuri/excelize/v2"
)

// ColumnSpan is the half-open column range [Begin, End) a binding drives.
type ColumnSpan struct {
	Begin int
	End   int
}

// String renders the span with spreadsheet column names, e.g. "D:E".
func (s ColumnSpan) String() string {
	first, err1 := excelize.ColumnNumberToName(s.Begin + 1)
	last, err2 := excelize.ColumnNumberToName(s.End)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("[%d, %d)", s.Begin, s.End)
	}
	return first + ":" + last
}

// Slot is one distinct (selection, columns) binding of a referenced signal.
type Slot struct {
	Ranges []models.IndexRange
	Cols   ColumnSpan
}

// SignalSlots holds the distinct slots of one referenced signal and, per
// row, the slots the row uses.
type SignalSlots struct {
	Slots []Slot
	Cases map[int][]int
}

func (s *SignalSlots) insert(row int, ranges []models.IndexRange, cols ColumnSpan) {
	idx := slices.IndexFunc(s.Slots, func(slot Slot) bool {
		return slot.Cols == cols && slices.Equal(slot.Ranges, ranges)
	})
	if idx < 0 {
		idx = len(s.Slots)
		s.Slots = append(s.Slots, Slot{Ranges: slices.Clone(ranges), Cols: cols})
	}
	s.Cases[row] = append(s.Cases[row], idx)
}

// SignalRoutes maps a referenced signal to the slots it is routed into.
type SignalRoutes struct {
	order   []models.SignalKey
	signals map[models.SignalKey]*SignalSlots
}

func newSignalRoutes() *SignalRoutes {
	return &SignalRoutes{signals: make(map[models.SignalKey]*SignalSlots)}
}

// Insert records that row routes ranges of signal into cols. Identical
// (ranges, cols) pairs share one slot.
func (r *SignalRoutes) Insert(signal models.SignalKey, row int, ranges []models.IndexRange, cols ColumnSpan) {
	s, ok := r.signals[signal]
	if !ok {
		s = &SignalSlots{Cases: make(map[int][]int)}
		r.signals[signal] = s
		r.order = append(r.order, signal)
	}
	s.insert(row, ranges, cols)
}

// Signals returns the referenced signals in first-seen order.
func (r *SignalRoutes) Signals() []models.SignalKey {
	return slices.Clone(r.order)
}

// Slots returns the slots of signal, or nil if it was never routed.
func (r *SignalRoutes) Slots(signal models.SignalKey) *SignalSlots {
	return r.signals[signal]
}
