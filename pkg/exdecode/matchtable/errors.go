package matchtable

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrIncompleteTable indicates a block too short to hold a target and a header row.
	ErrIncompleteTable = errors.New("match table needs a target row and a header row")
	// ErrMissingTarget indicates the target reference cell is vacant.
	ErrMissingTarget = errors.New("match table has no target signal")
	// ErrMissingPrimary indicates a header row without a #primary column.
	ErrMissingPrimary = errors.New("match table has no #primary column")
	// ErrDuplicatePrimary indicates a header row with more than one #primary column.
	ErrDuplicatePrimary = errors.New("match table has more than one #primary column")
	// ErrMergedHeader indicates a header cell merged across columns.
	ErrMergedHeader = errors.New("header cell is merged across columns")
	// ErrUnclassifiedColumn indicates data under a column whose header cannot hold it.
	ErrUnclassifiedColumn = errors.New("data under an unclassified column")
	// ErrWidthMismatch indicates a constant or reference whose width does not match its segments.
	ErrWidthMismatch = errors.New("width does not match segment width")
	// ErrTrailingInput indicates cell text left over after a complete parse.
	ErrTrailingInput = errors.New("unexpected trailing text")
)

// CellError locates a failure inside a match table.
type CellError struct {
	Sheet   string
	Row     int
	Col     int // -1 when the error concerns a whole row
	Content string
	Err     error
}

func (e *CellError) Error() string {
	loc := fmt.Sprintf("row %d", e.Row+1)
	if e.Col >= 0 {
		if name, err := excelize.CoordinatesToCellName(e.Col+1, e.Row+1); err == nil {
			loc = "cell " + name
		}
	}
	if e.Content != "" {
		return fmt.Sprintf("sheet %q %s (%q): %v", e.Sheet, loc, e.Content, e.Err)
	}
	return fmt.Sprintf("sheet %q %s: %v", e.Sheet, loc, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
