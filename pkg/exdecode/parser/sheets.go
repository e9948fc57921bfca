// Package parser reads decode tables out of xlsx workbooks.
package parser

import (
	"fmt"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads the cell text and merge rectangles of a sheet into a grid.
// Text is read raw, without number formats applied.
func LoadSheet(f *excelize.File, sheetName string) (*grid.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	merges := make([]grid.CellRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		r, err := mergeRange(mc.GetStartAxis(), mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merge %s:%s: %w", mc.GetStartAxis(), mc.GetEndAxis(), err)
		}
		merges = append(merges, r)
	}

	return grid.FromRows(sheetName, rows, merges)
}

// mergeRange converts an A1-style rectangle to 0-based grid coordinates.
func mergeRange(start, end string) (grid.CellRange, error) {
	begin, err := coordinates(start)
	if err != nil {
		return grid.CellRange{}, err
	}
	last, err := coordinates(end)
	if err != nil {
		return grid.CellRange{}, err
	}
	// excelize keeps the corners as written; normalize to top-left and bottom-right.
	return grid.CellRange{
		Begin: grid.CellPosition{Row: min(begin.Row, last.Row), Col: min(begin.Col, last.Col)},
		End:   grid.CellPosition{Row: max(begin.Row, last.Row), Col: max(begin.Col, last.Col)},
	}, nil
}

func coordinates(cell string) (grid.CellPosition, error) {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return grid.CellPosition{}, fmt.Errorf("%w: %w", grid.ErrInvalidPosition, err)
	}
	return grid.CellPosition{Row: row - 1, Col: col - 1}, nil
}
