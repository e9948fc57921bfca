package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/dsl"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
)

func newSheet(t *testing.T, rows [][]string, merges ...string) *grid.Sheet {
	t.Helper()
	var ranges []grid.CellRange
	for _, m := range merges {
		r, err := grid.ParseCellRange(m)
		if err != nil {
			t.Fatalf("ParseCellRange(%q) failed: %v", m, err)
		}
		ranges = append(ranges, r)
	}
	s, err := grid.FromRows("Sheet1", rows, ranges)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return s
}

func TestScanSections(t *testing.T) {
	s := newSheet(t, [][]string{
		{"#input", "[31:0]inst"},
		{"#output", "[0:0]valid", " [4:0]rd "},
		{"decoder for the base integer set"},
		{"#match", "inst"},
		{"", "[6:0]op", "#primary(alu)"},
		{"", "7'b0110011", "add"},
		{"#end"},
		{"#wire", "[11:0]imm"},
	})

	sections, err := ScanSections(s)
	if err != nil {
		t.Fatalf("ScanSections failed: %v", err)
	}

	expected := []Section{
		{Kind: SectionInput, Begin: 0, End: 0, Range: "A1:B1",
			Decls: []dsl.Declaration{{Range: dsl.Range{High: 31, Low: 0}, Name: "inst"}}},
		{Kind: SectionOutput, Begin: 1, End: 1, Range: "A2:C2",
			Decls: []dsl.Declaration{
				{Range: dsl.Range{High: 0, Low: 0}, Name: "valid"},
				{Range: dsl.Range{High: 4, Low: 0}, Name: "rd"},
			}},
		{Kind: SectionMatch, Begin: 3, End: 6, Range: "A4:C7"},
		{Kind: SectionWire, Begin: 7, End: 7, Range: "A8:B8",
			Decls: []dsl.Declaration{{Range: dsl.Range{High: 11, Low: 0}, Name: "imm"}}},
	}
	if diff := cmp.Diff(expected, sections); diff != "" {
		t.Errorf("ScanSections mismatch (-want +got):\n%s", diff)
	}
}

func TestScanSectionsMergedDirective(t *testing.T) {
	s := newSheet(t, [][]string{
		{"#match", "inst"},
		{"", "[6:0]op", "#primary(alu)"},
		{"#end"},
	}, "A1:A2")

	sections, err := ScanSections(s)
	if err != nil {
		t.Fatalf("ScanSections failed: %v", err)
	}
	if len(sections) != 1 || sections[0].Begin != 0 || sections[0].End != 2 {
		t.Errorf("Expected one match section over rows 0-2, got %+v", sections)
	}
}

func TestScanSectionsErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected error
		row, col int
	}{
		{"end without match", [][]string{{"#end"}}, ErrUnbalancedSection, 0, 0},
		{"nested match", [][]string{{"#match"}, {"#match"}, {"#end"}}, ErrUnbalancedSection, 1, 0},
		{"declaration inside match", [][]string{{"#match"}, {"#wire", "[1:0]a"}, {"#end"}}, ErrUnbalancedSection, 1, 0},
		{"unterminated match", [][]string{{"#input", "[1:0]a"}, {"#match", "a"}}, ErrUnbalancedSection, 1, 0},
		{"bad declaration", [][]string{{"#input", "inst"}}, dsl.ErrSyntax, 0, 1},
		{"trailing declaration text", [][]string{{"#input", "[1:0]a", "[3:0]b c"}}, dsl.ErrSyntax, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanSections(newSheet(t, tt.rows))
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, err)
			}
			var se *SectionError
			if !errors.As(err, &se) {
				t.Fatalf("Expected a *SectionError, got %T", err)
			}
			if se.Row != tt.row || se.Col != tt.col {
				t.Errorf("Expected error at (%d, %d), got (%d, %d)", tt.row, tt.col, se.Row, se.Col)
			}
		})
	}
}

func TestSectionErrorMessage(t *testing.T) {
	err := &SectionError{Sheet: "decode", Row: 3, Col: 1, Err: ErrUnbalancedSection}
	expected := `sheet "decode" cell B4: unbalanced #match/#end`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
