package grid

import (
	"errors"
	"fmt"
)

// ErrCorruptMerge indicates a merge back-reference that does not land on its anchor.
var ErrCorruptMerge = errors.New("corrupt merge reference")

// Sheet owns a ragged row-major grid of cells.
type Sheet struct {
	Name  string
	cells [][]Cell
}

// NewSheet validates the merge structure of cells and wraps them in a Sheet.
// Every Merge cell must resolve to a Primary anchor whose rectangle contains it.
func NewSheet(name string, cells [][]Cell) (*Sheet, error) {
	s := &Sheet{Name: name, cells: cells}
	for r, row := range cells {
		for c, cell := range row {
			if cell.Kind != CellMerge {
				continue
			}
			if err := s.checkMerge(r, c, cell.Offset); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Sheet) checkMerge(r, c int, off CellPosition) error {
	if off.Row < 0 || off.Col < 0 || (off.Row == 0 && off.Col == 0) {
		return fmt.Errorf("%w: cell %s has offset %s", ErrCorruptMerge, CellPosition{r, c}, off)
	}
	anchor, ok := s.cell(r-off.Row, c-off.Col)
	if !ok || anchor.Kind != CellPrimary {
		return fmt.Errorf("%w: cell %s does not resolve to a primary cell", ErrCorruptMerge, CellPosition{r, c})
	}
	if off.Row >= anchor.Size.Row || off.Col >= anchor.Size.Col {
		return fmt.Errorf("%w: cell %s lies outside the %s rectangle of its anchor",
			ErrCorruptMerge, CellPosition{r, c}, anchor.Size)
	}
	return nil
}

// FromRows builds a sheet from plain row text and merge rectangles. Text
// inside a merge rectangle other than at its top-left corner is discarded.
func FromRows(name string, rows [][]string, merges []CellRange) (*Sheet, error) {
	height := len(rows)
	for _, m := range merges {
		height = max(height, m.End.Row+1)
	}

	cells := make([][]Cell, height)
	for r := range cells {
		var row []string
		if r < len(rows) {
			row = rows[r]
		}
		cells[r] = make([]Cell, len(row))
		for c, text := range row {
			if text != "" {
				cells[r][c] = Primary(text)
			}
		}
	}

	covered := make(map[CellPosition]bool)
	for _, m := range merges {
		size := m.Size()
		if m.Begin.Row < 0 || m.Begin.Col < 0 || size.Row < 1 || size.Col < 1 {
			return nil, fmt.Errorf("%w: invalid merge rectangle %s", ErrCorruptMerge, m)
		}
		for r := range m.Rows() {
			if len(cells[r]) <= m.End.Col {
				cells[r] = append(cells[r], make([]Cell, m.End.Col+1-len(cells[r]))...)
			}
			for c := range m.Cols() {
				pos := CellPosition{Row: r, Col: c}
				if covered[pos] {
					return nil, fmt.Errorf("%w: merge rectangles overlap at %s", ErrCorruptMerge, pos)
				}
				covered[pos] = true
				if off := pos.Sub(m.Begin); off != (CellPosition{}) {
					cells[r][c] = MergeRef(off.Row, off.Col)
				}
			}
		}
		anchor := &cells[m.Begin.Row][m.Begin.Col]
		anchor.Kind = CellPrimary
		anchor.Size = size
	}

	return NewSheet(name, cells)
}

// NumRows returns the number of populated rows.
func (s *Sheet) NumRows() int {
	return len(s.cells)
}

// RowLen returns the number of columns stored for row, 0 when out of range.
func (s *Sheet) RowLen(row int) int {
	if row < 0 || row >= len(s.cells) {
		return 0
	}
	return len(s.cells[row])
}

func (s *Sheet) cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return Cell{}, false
	}
	return s.cells[row][col], true
}

// Content resolves the text at (row, col). It reports false when the
// position is outside the grid or vacant. Cells inside a merge rectangle
// resolve to the anchor's text and carry their own offset in Merged.
func (s *Sheet) Content(row, col int) (CellContent, bool) {
	cell, ok := s.cell(row, col)
	if !ok {
		return CellContent{}, false
	}
	switch cell.Kind {
	case CellPrimary:
		if cell.Text == "" {
			return CellContent{}, false
		}
		content := CellContent{Text: cell.Text}
		if cell.Size.Row > 1 || cell.Size.Col > 1 {
			content.Merged = &MergedCell{Size: cell.Size}
		}
		return content, true
	case CellMerge:
		// NewSheet guarantees the anchor is a primary cell.
		anchor := s.cells[row-cell.Offset.Row][col-cell.Offset.Col]
		if anchor.Text == "" {
			return CellContent{}, false
		}
		return CellContent{
			Text:   anchor.Text,
			Merged: &MergedCell{Offset: cell.Offset, Size: anchor.Size},
		}, true
	}
	return CellContent{}, false
}

// Row returns a cursor over the column indices of row.
func (s *Sheet) Row(row int) *RowCursor {
	return &RowCursor{n: s.RowLen(row)}
}

// RowCursor walks the column indices of one row and can skip ahead past
// merged column groups.
type RowCursor struct {
	n    int
	next int
}

// Next returns the next column index, or false once the row is exhausted.
func (c *RowCursor) Next() (int, bool) {
	if c.next >= c.n {
		return 0, false
	}
	idx := c.next
	c.next++
	return idx, true
}

// Skip advances the cursor past n columns.
func (c *RowCursor) Skip(n int) {
	c.next = min(c.next+n, c.n)
}

// Reset rewinds the cursor to the first column.
func (c *RowCursor) Reset() {
	c.next = 0
}
