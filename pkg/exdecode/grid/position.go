// Package grid provides the cell grid a decode table is read from.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrInvalidPosition indicates a cell or range reference that does not parse.
var ErrInvalidPosition = errors.New("invalid cell position")

// CellPosition is a zero-based (row, col) coordinate.
type CellPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ParseCellPosition parses an A1-style reference such as "C8".
//
// Column letters accumulate additively from 'A' = 0, so only single-letter
// columns map to their spreadsheet index.
func ParseCellPosition(s string) (CellPosition, error) {
	pos, rest, err := cellPosition(s)
	if err != nil {
		return CellPosition{}, err
	}
	if rest != "" {
		return CellPosition{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return pos, nil
}

func cellPosition(s string) (CellPosition, string, error) {
	i := 0
	col := 0
	for i < len(s) && isASCIILetter(s[i]) {
		col += int(upper(s[i]) - 'A')
		i++
	}
	if i == 0 {
		return CellPosition{}, s, fmt.Errorf("%w: %q has no column letters", ErrInvalidPosition, s)
	}

	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return CellPosition{}, s, fmt.Errorf("%w: %q has no row number", ErrInvalidPosition, s)
	}
	row, err := strconv.ParseUint(s[i:j], 10, 16)
	if err != nil || row == 0 {
		return CellPosition{}, s, fmt.Errorf("%w: %q has an invalid row number", ErrInvalidPosition, s)
	}

	return CellPosition{Row: int(row) - 1, Col: col}, s[j:], nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Compare reports how p orders against q. The second result is false when
// the positions are incomparable, that is when one coordinate is greater and
// the other is smaller.
func (p CellPosition) Compare(q CellPosition) (int, bool) {
	switch {
	case p == q:
		return 0, true
	case p.Row >= q.Row && p.Col >= q.Col:
		return 1, true
	case p.Row <= q.Row && p.Col <= q.Col:
		return -1, true
	}
	return 0, false
}

// LessEq reports whether p <= q on both coordinates.
func (p CellPosition) LessEq(q CellPosition) bool {
	c, ok := p.Compare(q)
	return ok && c <= 0
}

// Sub returns the componentwise difference p - q.
func (p CellPosition) Sub(q CellPosition) CellPosition {
	return CellPosition{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// CellRange is an inclusive rectangle of cells with Begin <= End.
type CellRange struct {
	Begin CellPosition `json:"begin"`
	End   CellPosition `json:"end"`
}

// ParseCellRange parses a reference such as "C8:D9".
func ParseCellRange(s string) (CellRange, error) {
	b, e, ok := strings.Cut(s, ":")
	if !ok {
		return CellRange{}, fmt.Errorf("%w: %q is not a range", ErrInvalidPosition, s)
	}
	begin, err := ParseCellPosition(b)
	if err != nil {
		return CellRange{}, err
	}
	end, err := ParseCellPosition(e)
	if err != nil {
		return CellRange{}, err
	}
	if !begin.LessEq(end) {
		return CellRange{}, fmt.Errorf("%w: %q ends before it begins", ErrInvalidPosition, s)
	}
	return CellRange{Begin: begin, End: end}, nil
}

// Size returns the number of rows and columns covered by the range.
func (r CellRange) Size() CellPosition {
	return CellPosition{Row: r.End.Row - r.Begin.Row + 1, Col: r.End.Col - r.Begin.Col + 1}
}

// Contains reports whether p lies inside the range.
func (r CellRange) Contains(p CellPosition) bool {
	return r.Begin.LessEq(p) && p.LessEq(r.End)
}

// Rows yields the row indices of the range in ascending order.
func (r CellRange) Rows() iter.Seq[int] {
	return span(r.Begin.Row, r.End.Row)
}

// Cols yields the column indices of the range in ascending order.
func (r CellRange) Cols() iter.Seq[int] {
	return span(r.Begin.Col, r.End.Col)
}

func span(first, last int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := first; i <= last; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func (r CellRange) String() string {
	return fmt.Sprintf("%s:%s", r.Begin, r.End)
}
