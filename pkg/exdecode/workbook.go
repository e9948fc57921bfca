package exdecode

import (
	"github.com/ukaji3/exdecode-go/pkg/exdecode/matchtable"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
)

// WorkbookData is the result of compiling a workbook.
type WorkbookData struct {
	BookName string
	Sheets   map[string]*SheetData
	// Order lists the compiled sheet names in workbook order.
	Order []string
}

func newWorkbookData(bookName string) *WorkbookData {
	return &WorkbookData{BookName: bookName, Sheets: make(map[string]*SheetData)}
}

func (wb *WorkbookData) add(s *SheetData) {
	wb.Sheets[s.Name] = s
	wb.Order = append(wb.Order, s.Name)
}

// SheetList returns the compiled sheets in workbook order.
func (wb *WorkbookData) SheetList() []*SheetData {
	out := make([]*SheetData, 0, len(wb.Order))
	for _, name := range wb.Order {
		out = append(out, wb.Sheets[name])
	}
	return out
}

// SheetData is the compiled module of one sheet.
type SheetData struct {
	Name   string
	Module *models.Module
	Tables []TableData
}

// TableData is a compiled match table and the A1 range it was read from.
type TableData struct {
	Range string
	*matchtable.Table
}
