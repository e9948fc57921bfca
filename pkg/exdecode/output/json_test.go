package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/exdecode-go/pkg/exdecode"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
)

func compileRows(t *testing.T, rows [][]string) *exdecode.SheetData {
	t.Helper()
	s, err := grid.FromRows("decode", rows, nil)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	data, err := exdecode.CompileSheet(s, exdecode.DefaultOptions())
	if err != nil {
		t.Fatalf("CompileSheet failed: %v", err)
	}
	return data
}

func TestNewSheetView(t *testing.T) {
	data := compileRows(t, [][]string{
		{"#input", "[6:0]opcode"},
		{"#match", "opcode"},
		{"", "[6:0]op", "#primary(alu)"},
		{"", "7'b0110011", "add"},
		{"#end"},
	})

	expected := SheetView{
		Name:   "decode",
		Inputs: []string{"opcode"},
		Signals: []SignalView{
			{Name: "opcode", Width: 7, Source: "input"},
			{Name: "match_opcode", Width: 7, Source: "wire", Expr: "opcode"},
			{Name: "op", Width: 7, Source: "wire", Expr: "match_opcode"},
			{Name: "op_is_0110011", Width: 1, Source: "logic", Expr: "(op == 7'b0110011)"},
			{Name: "alu_add", Width: 1, Source: "logic", Expr: "op_is_0110011"},
		},
		Tables: []TableView{{
			Range:  "A2:C5",
			Target: "opcode",
			Match:  "match_opcode",
			Header: []ColumnView{
				{Column: "A", Kind: "none"},
				{Column: "B", Kind: "segment", Segment: "op", Width: 7},
				{Column: "C", Kind: "primary", Prefix: "alu"},
			},
			Conditions: []RowConditions{{Row: 2, Signals: []string{"op_is_0110011"}}},
			Enables:    []EnableView{{Row: 2, Output: "alu_add", Expr: "op_is_0110011"}},
		}},
	}
	if diff := cmp.Diff(expected, NewSheetView(data)); diff != "" {
		t.Errorf("NewSheetView mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutesAndFlags(t *testing.T) {
	data := compileRows(t, [][]string{
		{"#input", "[31:0]inst"},
		{"#match", "inst"},
		{"", "[6:0]op", "[11:7]rd", "#flag(fmt)", "#primary(dec)"},
		{"", "7'b0110011", "inst[11:7]", "r", "add"},
		{"", "7'b0010011", "inst[11:7]", "i", "addi"},
		{"#end"},
	})

	view := NewSheetView(data)
	if len(view.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(view.Tables))
	}
	table := view.Tables[0]

	expectedRoutes := []RouteView{{
		Signal: "inst",
		Slots:  []SlotView{{Ranges: []string{"[11:7]"}, Columns: "C:C", Rows: []int{2, 3}}},
	}}
	if diff := cmp.Diff(expectedRoutes, table.Routes); diff != "" {
		t.Errorf("Routes mismatch (-want +got):\n%s", diff)
	}

	expectedFlags := []FlagView{{Column: "D", Prefix: "fmt", Rows: map[string][]int{"fmt_r": {2}, "fmt_i": {3}}}}
	if diff := cmp.Diff(expectedFlags, table.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSON(t *testing.T) {
	first := compileRows(t, [][]string{{"#input", "[31:0]inst"}})
	first.Name = "RV32I"
	second := compileRows(t, [][]string{{"#input", "[15:0]half"}})
	second.Name = "RVC"

	wb := &exdecode.WorkbookData{
		BookName: "decode.xlsx",
		Sheets:   map[string]*exdecode.SheetData{"RV32I": first, "RVC": second},
		Order:    []string{"RV32I", "RVC"},
	}

	compact, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Errorf("Expected compact output on one line")
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), `"book_name": "decode.xlsx"`) {
		t.Errorf("Expected indented book_name, got:\n%s", pretty)
	}

	var decoded WorkbookView
	if err := json.Unmarshal(compact, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.Sheets) != 2 || decoded.Sheets[0].Name != "RV32I" || decoded.Sheets[1].Name != "RVC" {
		t.Errorf("Expected sheets in workbook order, got %+v", decoded.Sheets)
	}
}

func TestSheetToJSON(t *testing.T) {
	data := compileRows(t, [][]string{{"#wire", "[4:0]rd"}})

	out, err := SheetToJSON(data, false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	expected := `{"name":"decode","signals":[{"name":"rd","width":5,"source":"unconnected"}]}`
	if string(out) != expected {
		t.Errorf("Expected %s, got %s", expected, out)
	}
}
