package matchtable

import (
	"maps"
	"slices"

	"github.com/holiman/uint256"
)

// ConstantCases maps segment column -> constant value -> rows requiring it.
type ConstantCases struct {
	cols map[int]map[uint256.Int][]int
}

func newConstantCases() *ConstantCases {
	return &ConstantCases{cols: make(map[int]map[uint256.Int][]int)}
}

// Insert records that row requires value on column col.
func (c *ConstantCases) Insert(row, col int, value *uint256.Int) {
	values, ok := c.cols[col]
	if !ok {
		values = make(map[uint256.Int][]int)
		c.cols[col] = values
	}
	values[*value] = append(values[*value], row)
}

// Columns returns the columns holding at least one constant, ascending.
func (c *ConstantCases) Columns() []int {
	return slices.Sorted(maps.Keys(c.cols))
}

// Values returns the distinct constants of col in ascending numeric order.
func (c *ConstantCases) Values(col int) []uint256.Int {
	values := slices.Collect(maps.Keys(c.cols[col]))
	slices.SortFunc(values, func(a, b uint256.Int) int {
		return a.Cmp(&b)
	})
	return values
}

// Rows returns the rows requiring value on col, in insertion order.
func (c *ConstantCases) Rows(col int, value *uint256.Int) []int {
	return slices.Clone(c.cols[col][*value])
}
