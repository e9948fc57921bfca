// Package output serializes compiled workbooks to JSON.
package output

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/ukaji3/exdecode-go/pkg/exdecode"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/matchtable"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
	"github.com/xuri/excelize/v2"
)

// ToJSON serializes a compiled workbook.
func ToJSON(wb *exdecode.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(NewWorkbookView(wb), pretty)
}

// SheetToJSON serializes one compiled sheet.
func SheetToJSON(sheet *exdecode.SheetData, pretty bool) ([]byte, error) {
	return marshal(NewSheetView(sheet), pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// NewWorkbookView builds the document of a compiled workbook.
func NewWorkbookView(wb *exdecode.WorkbookData) WorkbookView {
	view := WorkbookView{BookName: wb.BookName, Sheets: []SheetView{}}
	for _, sheet := range wb.SheetList() {
		view.Sheets = append(view.Sheets, NewSheetView(sheet))
	}
	return view
}

// NewSheetView builds the document of one compiled sheet.
func NewSheetView(sheet *exdecode.SheetData) SheetView {
	m := sheet.Module
	view := SheetView{
		Name:    sheet.Name,
		Inputs:  keyNames(m.Inputs()),
		Outputs: keyNames(m.Outputs()),
		Signals: []SignalView{},
	}
	for _, s := range m.Signals() {
		view.Signals = append(view.Signals, signalView(s))
	}
	for _, t := range sheet.Tables {
		view.Tables = append(view.Tables, tableView(t))
	}
	return view
}

func keyNames(keys []models.SignalKey) []string {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

func signalView(s *models.Signal) SignalView {
	v := SignalView{Name: s.Key.String(), Width: s.Width, Source: s.Source.Kind.String()}
	if s.Source.Kind == models.SourceWire || s.Source.Kind == models.SourceLogic {
		v.Expr = s.Source.String()
	}
	return v
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

func tableView(t exdecode.TableData) TableView {
	view := TableView{
		Range:  t.Range,
		Target: t.Target.String(),
		Match:  t.Match.String(),
	}

	for col, h := range t.Header {
		cv := ColumnView{Column: columnName(col), Kind: h.Kind.String(), Prefix: h.Prefix}
		if h.Kind == matchtable.ColumnSegment {
			cv.Segment, cv.Width = h.Segment.String(), h.Width
		}
		view.Header = append(view.Header, cv)
	}

	for _, row := range slices.Sorted(maps.Keys(t.Conditions)) {
		view.Conditions = append(view.Conditions, RowConditions{Row: row, Signals: keyNames(t.Conditions[row])})
	}

	for _, e := range t.Enables {
		view.Enables = append(view.Enables, EnableView{Row: e.Row, Output: e.Output.String(), Expr: e.Expr.String()})
	}

	for _, sig := range t.Routes.Signals() {
		view.Routes = append(view.Routes, routeView(sig, t.Routes.Slots(sig)))
	}

	for _, f := range t.Flags {
		view.Flags = append(view.Flags, FlagView{Column: columnName(f.Col), Prefix: f.Prefix, Rows: f.Rows})
	}
	return view
}

func routeView(sig models.SignalKey, slots *matchtable.SignalSlots) RouteView {
	view := RouteView{Signal: sig.String()}
	for _, slot := range slots.Slots {
		ranges := make([]string, len(slot.Ranges))
		for i, r := range slot.Ranges {
			ranges[i] = r.String()
		}
		view.Slots = append(view.Slots, SlotView{
			Ranges:  ranges,
			Columns: slot.Cols.String(),
			Rows:    []int{},
		})
	}

	// Rows are visited in ascending order so each slot lists its rows sorted.
	for _, row := range slices.Sorted(maps.Keys(slots.Cases)) {
		for _, idx := range slots.Cases[row] {
			view.Slots[idx].Rows = append(view.Slots[idx].Rows, row)
		}
	}
	return view
}
