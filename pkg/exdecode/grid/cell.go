package grid

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	// CellNone is a vacant cell.
	CellNone CellKind = iota
	// CellPrimary holds text and anchors a merge rectangle (1x1 when unmerged).
	CellPrimary
	// CellMerge points back at the anchor of the rectangle it belongs to.
	CellMerge
)

// Cell is one grid slot. Only the fields of its Kind are meaningful.
type Cell struct {
	Kind CellKind
	// Text is the content of a Primary cell.
	Text string
	// Size is the rows/cols extent of the rectangle anchored by a Primary cell.
	Size CellPosition
	// Offset is the position of a Merge cell relative to its anchor.
	Offset CellPosition
}

// Vacant returns an empty cell.
func Vacant() Cell {
	return Cell{Kind: CellNone}
}

// Primary returns an unmerged cell holding text.
func Primary(text string) Cell {
	return Cell{Kind: CellPrimary, Text: text, Size: CellPosition{Row: 1, Col: 1}}
}

// MergeRef returns a back-reference to the anchor rows/cols above and left of it.
func MergeRef(rows, cols int) Cell {
	return Cell{Kind: CellMerge, Offset: CellPosition{Row: rows, Col: cols}}
}

// MergedCell describes where a queried cell sits inside its merge rectangle.
type MergedCell struct {
	// Offset of the queried cell from the rectangle origin.
	Offset CellPosition `json:"offset"`
	// Size of the whole rectangle.
	Size CellPosition `json:"size"`
}

// LastCol reports whether the queried cell is in the rectangle's last column.
func (m MergedCell) LastCol() bool {
	return m.Offset.Col == m.Size.Col-1
}

// CellContent is the resolved text of a cell and its merge geometry, if any.
type CellContent struct {
	Text   string
	Merged *MergedCell
}

// Cols returns how many columns the content spans.
func (c CellContent) Cols() int {
	if c.Merged == nil {
		return 1
	}
	return c.Merged.Size.Col
}

// ColOffset returns the column offset of the queried cell from the merge origin.
func (c CellContent) ColOffset() int {
	if c.Merged == nil {
		return 0
	}
	return c.Merged.Offset.Col
}
