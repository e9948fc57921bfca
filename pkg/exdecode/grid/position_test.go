package grid

import (
	"errors"
	"slices"
	"testing"
)

func TestParseCellPosition(t *testing.T) {
	tests := []struct {
		input    string
		expected CellPosition
	}{
		{"A1", CellPosition{Row: 0, Col: 0}},
		{"C8", CellPosition{Row: 7, Col: 2}},
		{"c8", CellPosition{Row: 7, Col: 2}},
		{"Z100", CellPosition{Row: 99, Col: 25}},
		// Letters accumulate additively.
		{"BB2", CellPosition{Row: 1, Col: 2}},
	}

	for _, tt := range tests {
		result, err := ParseCellPosition(tt.input)
		if err != nil {
			t.Errorf("ParseCellPosition(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseCellPosition(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParseCellPositionInvalid(t *testing.T) {
	for _, input := range []string{"", "8", "C", "C0", "C8x", "C99999", "$C$8"} {
		if _, err := ParseCellPosition(input); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParseCellPosition(%q) error = %v, expected ErrInvalidPosition", input, err)
		}
	}
}

func TestParseCellRange(t *testing.T) {
	r, err := ParseCellRange("C8:C9")
	if err != nil {
		t.Fatalf("ParseCellRange failed: %v", err)
	}
	expected := CellRange{Begin: CellPosition{Row: 7, Col: 2}, End: CellPosition{Row: 8, Col: 2}}
	if r != expected {
		t.Errorf("ParseCellRange(C8:C9) = %v, expected %v", r, expected)
	}

	if got := slices.Collect(r.Rows()); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("Rows() = %v, expected [7 8]", got)
	}
	if got := slices.Collect(r.Cols()); !slices.Equal(got, []int{2}) {
		t.Errorf("Cols() = %v, expected [2]", got)
	}
	if r.Size() != (CellPosition{Row: 2, Col: 1}) {
		t.Errorf("Size() = %v, expected (2, 1)", r.Size())
	}

	for _, input := range []string{"C8", "C8:", "C9:C8", "C8-C9"} {
		if _, err := ParseCellRange(input); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParseCellRange(%q) error = %v, expected ErrInvalidPosition", input, err)
		}
	}
}

func TestCompare(t *testing.T) {
	b6 := CellPosition{Row: 5, Col: 1}
	tests := []struct {
		other      string
		expected   int
		comparable bool
	}{
		{"B6", 0, true},
		{"B5", 1, true},
		{"B7", -1, true},
		{"A5", 1, true},
		{"C7", -1, true},
		{"A7", 0, false},
		{"C5", 0, false},
	}

	for _, tt := range tests {
		other, err := ParseCellPosition(tt.other)
		if err != nil {
			t.Fatalf("ParseCellPosition(%q) failed: %v", tt.other, err)
		}
		result, ok := b6.Compare(other)
		if ok != tt.comparable || result != tt.expected {
			t.Errorf("B6.Compare(%s) = (%d, %v), expected (%d, %v)",
				tt.other, result, ok, tt.expected, tt.comparable)
		}
	}

	if b6.LessEq(CellPosition{Row: 6, Col: 0}) {
		t.Errorf("incomparable positions must not be LessEq")
	}
}
