package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
	"github.com/xuri/excelize/v2"
)

func TestLoadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "#match")
	f.SetCellValue(sheetName, "B1", "opcode[6:0]")
	f.SetCellValue(sheetName, "B2", "[6:2]")
	f.SetCellValue(sheetName, "C2", "[1:0]")
	f.SetCellValue(sheetName, "D2", "#primary(alu)")
	f.SetCellValue(sheetName, "B3", "7'b0110011")
	f.SetCellValue(sheetName, "D3", "add")
	f.SetCellValue(sheetName, "A4", "#end")
	if err := f.MergeCell(sheetName, "B3", "C3"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "decode.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	s, err := LoadSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}

	if s.Name != sheetName {
		t.Errorf("Expected sheet name %q, got %q", sheetName, s.Name)
	}
	if s.NumRows() != 4 {
		t.Errorf("Expected 4 rows, got %d", s.NumRows())
	}

	c, ok := s.Content(0, 1)
	if !ok || c.Text != "opcode[6:0]" {
		t.Errorf("Expected B1 to hold 'opcode[6:0]', got %v (ok=%v)", c.Text, ok)
	}

	anchor, ok := s.Content(2, 1)
	if !ok || anchor.Merged == nil {
		t.Fatalf("Expected B3 to be a merge anchor, got %+v (ok=%v)", anchor, ok)
	}
	if anchor.Cols() != 2 || anchor.ColOffset() != 0 {
		t.Errorf("Expected anchor of 2 columns at offset 0, got %d at %d", anchor.Cols(), anchor.ColOffset())
	}

	cont, ok := s.Content(2, 2)
	if !ok || cont.Text != "7'b0110011" {
		t.Fatalf("Expected C3 to resolve to the anchor text, got %q (ok=%v)", cont.Text, ok)
	}
	if cont.ColOffset() != 1 || !cont.Merged.LastCol() {
		t.Errorf("Expected C3 to be the last column of its merge, got offset %d", cont.ColOffset())
	}

	if _, ok := s.Content(2, 3); !ok {
		t.Errorf("Expected D3 to hold text")
	}
}

func TestLoadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := LoadSheet(f, "NoSuchSheet"); err == nil {
		t.Errorf("Expected an error for a missing sheet")
	}
}

func TestMergeRange(t *testing.T) {
	tests := []struct {
		start, end string
		expected   grid.CellRange
	}{
		{"B3", "C3", grid.CellRange{Begin: grid.CellPosition{Row: 2, Col: 1}, End: grid.CellPosition{Row: 2, Col: 2}}},
		{"A1", "A4", grid.CellRange{Begin: grid.CellPosition{Row: 0, Col: 0}, End: grid.CellPosition{Row: 3, Col: 0}}},
		{"AB10", "AA9", grid.CellRange{Begin: grid.CellPosition{Row: 8, Col: 26}, End: grid.CellPosition{Row: 9, Col: 27}}},
	}

	for _, tt := range tests {
		result, err := mergeRange(tt.start, tt.end)
		if err != nil {
			t.Errorf("mergeRange(%q, %q) failed: %v", tt.start, tt.end, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("mergeRange(%q, %q) = %v, expected %v", tt.start, tt.end, result, tt.expected)
		}
	}

	if _, err := mergeRange("B", "C3"); !errors.Is(err, grid.ErrInvalidPosition) {
		t.Errorf("Expected ErrInvalidPosition, got %v", err)
	}
}
