// Package matchtable compiles #match ... #end blocks into signals.
//
// A block is laid out as
//
//	row begin    | #match | target reference
//	row begin+1  | header: [H:L]alias segments, #primary(prefix), #flag(prefix)
//	rows after   | one case per row: constants or signal references
//
// Every distinct constant of a segment becomes a "<segment>_is_<bits>"
// condition signal, and every #primary reference becomes a width-1 signal
// enabled when all conditions of its row hold.
package matchtable

import (
	"fmt"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
)

// ColumnKind classifies a header column.
type ColumnKind int

const (
	// ColumnNone is a vacant header cell. No data may appear below it.
	ColumnNone ColumnKind = iota
	// ColumnSegment is a "[H:L]alias" slice of the target.
	ColumnSegment
	// ColumnFlag is a "#flag(prefix)" column.
	ColumnFlag
	// ColumnPrimary is the "#primary(prefix)" column naming each row's output.
	ColumnPrimary
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnNone:
		return "none"
	case ColumnSegment:
		return "segment"
	case ColumnFlag:
		return "flag"
	case ColumnPrimary:
		return "primary"
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// Column is the classification of one header cell.
type Column struct {
	Kind ColumnKind
	// Segment and Width are set for segment columns.
	Segment models.SignalKey
	Width   int
	// Prefix is set for flag and primary columns.
	Prefix string
}

// PrimaryRow is a row naming a primary output.
type PrimaryRow struct {
	Row  int
	Name string
}

// FlagColumn collects, per "<prefix>_<reference>" name, the rows setting it.
type FlagColumn struct {
	Col    int
	Prefix string
	Rows   map[string][]int
}

// Enable is the condition under which one row selects its primary output.
type Enable struct {
	Row    int
	Output models.SignalKey
	Expr   models.LogicTree
}

// Table is the result of compiling one block. Row indexes are offsets from
// the block's #match row.
type Table struct {
	Sheet  string
	Begin  int
	End    int
	Target models.SignalKey
	Match  models.SignalKey
	Header []Column

	Constants *ConstantCases
	Routes    *SignalRoutes
	Primaries []PrimaryRow
	Flags     []*FlagColumn

	// Conditions lists, per row, the condition signals the row requires.
	Conditions map[int][]models.SignalKey
	Enables    []Enable
}

func newTable(sheet string, begin, end int) *Table {
	return &Table{
		Sheet:      sheet,
		Begin:      begin,
		End:        end,
		Constants:  newConstantCases(),
		Routes:     newSignalRoutes(),
		Conditions: make(map[int][]models.SignalKey),
	}
}

func (t *Table) flag(col int) *FlagColumn {
	for _, f := range t.Flags {
		if f.Col == col {
			return f
		}
	}
	return nil
}
