package output

// WorkbookView is the JSON document of a compiled workbook.
type WorkbookView struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists compiled sheets in workbook order.
	Sheets []SheetView `json:"sheets"`
}

// SheetView is the compiled module of a single sheet.
type SheetView struct {
	Name string `json:"name"`
	// Inputs and Outputs list module ports in declaration order.
	Inputs  []string `json:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty"`
	// Signals lists every signal in registration order.
	Signals []SignalView `json:"signals"`
	// Tables contains the match table reports, when kept.
	Tables []TableView `json:"tables,omitempty"`
}

// SignalView is one named signal.
type SignalView struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Source string `json:"source"`
	// Expr is the wire or expression text of wire and logic signals.
	Expr string `json:"expr,omitempty"`
}

// TableView is the report of one match table.
type TableView struct {
	// Range is the A1-style range of the table, e.g. "A3:F9".
	Range  string       `json:"range"`
	Target string       `json:"target"`
	Match  string       `json:"match"`
	Header []ColumnView `json:"header"`
	// Conditions lists, per row with at least one, the condition signals it requires.
	Conditions []RowConditions `json:"conditions,omitempty"`
	Enables    []EnableView    `json:"enables,omitempty"`
	Routes     []RouteView     `json:"routes,omitempty"`
	Flags      []FlagView      `json:"flags,omitempty"`
}

// ColumnView is the classification of one header column.
type ColumnView struct {
	// Column is the spreadsheet column name, e.g. "B".
	Column  string `json:"column"`
	Kind    string `json:"kind"`
	Segment string `json:"segment,omitempty"`
	Width   int    `json:"width,omitempty"`
	Prefix  string `json:"prefix,omitempty"`
}

// RowConditions lists the condition signals of one table row.
type RowConditions struct {
	Row     int      `json:"row"`
	Signals []string `json:"signals"`
}

// EnableView is the enable expression of one primary row.
type EnableView struct {
	Row    int    `json:"row"`
	Output string `json:"output"`
	Expr   string `json:"expr"`
}

// RouteView lists the slots one referenced signal is routed into.
type RouteView struct {
	Signal string     `json:"signal"`
	Slots  []SlotView `json:"slots"`
}

// SlotView is one distinct binding and the rows using it.
type SlotView struct {
	Ranges []string `json:"ranges"`
	// Columns is the column range driven, e.g. "C:D".
	Columns string `json:"columns"`
	Rows    []int  `json:"rows"`
}

// FlagView is one #flag column.
type FlagView struct {
	Column string           `json:"column"`
	Prefix string           `json:"prefix"`
	Rows   map[string][]int `json:"rows"`
}
