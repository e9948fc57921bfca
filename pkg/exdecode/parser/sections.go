package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/dsl"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
	"github.com/xuri/excelize/v2"
)

// ErrUnbalancedSection indicates a #match without #end or the reverse.
var ErrUnbalancedSection = errors.New("unbalanced #match/#end")

// SectionKind is the directive opening a section.
type SectionKind int

const (
	// SectionInput declares module inputs.
	SectionInput SectionKind = iota
	// SectionOutput declares module outputs.
	SectionOutput
	// SectionWire declares internal signals.
	SectionWire
	// SectionMatch is a #match ... #end table.
	SectionMatch
)

var directives = map[string]SectionKind{
	"#input":  SectionInput,
	"#output": SectionOutput,
	"#wire":   SectionWire,
	"#match":  SectionMatch,
}

func (k SectionKind) String() string {
	switch k {
	case SectionInput:
		return "input"
	case SectionOutput:
		return "output"
	case SectionWire:
		return "wire"
	case SectionMatch:
		return "match"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// Section is one directive found in column A.
type Section struct {
	Kind SectionKind
	// Begin is the directive row. End is the #end row of a match section
	// and Begin for declarations.
	Begin int
	End   int
	// Range is the A1-style rectangle covered, e.g. "A3:F9".
	Range string
	// Decls holds the declarations of #input, #output and #wire rows.
	Decls []dsl.Declaration
}

// SectionError locates a failure found while scanning sections.
type SectionError struct {
	Sheet string
	Row   int
	Col   int
	Err   error
}

func (e *SectionError) Error() string {
	cell, err := excelize.CoordinatesToCellName(e.Col+1, e.Row+1)
	if err != nil {
		cell = fmt.Sprintf("R%dC%d", e.Row+1, e.Col+1)
	}
	return fmt.Sprintf("sheet %q cell %s: %v", e.Sheet, cell, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// ScanSections lists the sections of a sheet in row order.
func ScanSections(sheet *grid.Sheet) ([]Section, error) {
	var sections []Section
	open := -1

	for row := 0; row < sheet.NumRows(); row++ {
		text, ok := anchorText(sheet, row, 0)
		if !ok {
			continue
		}

		if text == "#end" {
			if open < 0 {
				return nil, &SectionError{Sheet: sheet.Name, Row: row, Err: fmt.Errorf("%w: #end without #match", ErrUnbalancedSection)}
			}
			r, err := rangeString(sheet, open, row)
			if err != nil {
				return nil, &SectionError{Sheet: sheet.Name, Row: row, Err: err}
			}
			sections = append(sections, Section{Kind: SectionMatch, Begin: open, End: row, Range: r})
			open = -1
			continue
		}

		kind, ok := directives[text]
		if !ok {
			continue
		}
		if open >= 0 {
			return nil, &SectionError{Sheet: sheet.Name, Row: row,
				Err: fmt.Errorf("%w: %s inside the #match opened at row %d", ErrUnbalancedSection, text, open+1)}
		}
		if kind == SectionMatch {
			open = row
			continue
		}

		decls, err := declarations(sheet, row)
		if err != nil {
			return nil, err
		}
		r, err := rangeString(sheet, row, row)
		if err != nil {
			return nil, &SectionError{Sheet: sheet.Name, Row: row, Err: err}
		}
		sections = append(sections, Section{Kind: kind, Begin: row, End: row, Range: r, Decls: decls})
	}

	if open >= 0 {
		return nil, &SectionError{Sheet: sheet.Name, Row: open, Err: fmt.Errorf("%w: #match is never closed", ErrUnbalancedSection)}
	}
	return sections, nil
}

// anchorText returns the trimmed text at (row, col). Continuation cells of
// a merge report false so merged text counts once.
func anchorText(sheet *grid.Sheet, row, col int) (string, bool) {
	c, ok := sheet.Content(row, col)
	if !ok || (c.Merged != nil && c.Merged.Offset != (grid.CellPosition{})) {
		return "", false
	}
	text := strings.TrimSpace(c.Text)
	return text, text != ""
}

func declarations(sheet *grid.Sheet, row int) ([]dsl.Declaration, error) {
	var decls []dsl.Declaration
	for col := 1; col < sheet.RowLen(row); col++ {
		text, ok := anchorText(sheet, row, col)
		if !ok {
			continue
		}
		d, rest, err := dsl.SignalDef(text)
		if err == nil && strings.TrimSpace(rest) != "" {
			err = fmt.Errorf("%w: unexpected %q after declaration", dsl.ErrSyntax, rest)
		}
		if err != nil {
			return nil, &SectionError{Sheet: sheet.Name, Row: row, Col: col, Err: err}
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// rangeString renders rows [begin, end] as an A1 rectangle spanning the
// widest row.
func rangeString(sheet *grid.Sheet, begin, end int) (string, error) {
	width := 1
	for r := begin; r <= end; r++ {
		width = max(width, sheet.RowLen(r))
	}
	start, err := excelize.CoordinatesToCellName(1, begin+1)
	if err != nil {
		return "", err
	}
	stop, err := excelize.CoordinatesToCellName(width, end+1)
	if err != nil {
		return "", err
	}
	return start + ":" + stop, nil
}
