package exdecode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/matchtable"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/parser"
	"github.com/xuri/excelize/v2"
)

// Compile compiles the decode tables of an xlsx file.
func Compile(path string, opts Options) (*WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	return CompileFile(f, filepath.Base(path), opts)
}

// CompileFile compiles the selected sheets of an open workbook, each into
// its own module.
func CompileFile(f *excelize.File, bookName string, opts Options) (*WorkbookData, error) {
	sheetList := f.GetSheetList()
	for _, name := range opts.Sheets {
		if !slices.Contains(sheetList, name) {
			return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, name, bookName)
		}
	}

	log := opts.logger()
	wb := newWorkbookData(bookName)
	for _, sheetName := range sheetList {
		if !opts.ShouldCompileSheet(sheetName) {
			log.Debug("skipping sheet", "sheet", sheetName)
			continue
		}

		sheet, err := parser.LoadSheet(f, sheetName)
		if err != nil {
			return nil, NewCompileError(sheetName, "grid", err)
		}
		data, err := CompileSheet(sheet, opts)
		if err != nil {
			return nil, err
		}
		wb.add(data)
	}
	return wb, nil
}

// CompileSheet compiles the sections of one sheet in row order. Declarations
// must precede the tables that reference them.
func CompileSheet(sheet *grid.Sheet, opts Options) (*SheetData, error) {
	log := opts.logger()
	sections, err := parser.ScanSections(sheet)
	if err != nil {
		return nil, NewCompileError(sheet.Name, "sections", err)
	}

	data := &SheetData{Name: sheet.Name, Module: models.NewModule()}
	for _, sec := range sections {
		if sec.Kind != parser.SectionMatch {
			if err := declare(data.Module, sec); err != nil {
				return nil, NewCompileError(sheet.Name, "declarations", err)
			}
			continue
		}

		t, err := matchtable.Compile(data.Module, sheet, sec.Begin, sec.End, log)
		if err != nil {
			return nil, NewCompileError(sheet.Name, "match", err)
		}
		log.Debug("compiled table", "sheet", sheet.Name, "range", sec.Range,
			"target", t.Target, "conditions", len(t.Conditions), "enables", len(t.Enables))
		if opts.ShouldIncludeTables() {
			data.Tables = append(data.Tables, TableData{Range: sec.Range, Table: t})
		}
	}

	log.Info("compiled sheet", "sheet", sheet.Name, "signals", data.Module.Len(),
		"inputs", len(data.Module.Inputs()), "outputs", len(data.Module.Outputs()))
	return data, nil
}

func declare(m *models.Module, sec parser.Section) error {
	for _, d := range sec.Decls {
		if d.Range.High < d.Range.Low {
			return fmt.Errorf("%s %s: %w: %s is declared [%d:%d]",
				sec.Kind, sec.Range, models.ErrIndexOutOfRange, d.Name, d.Range.High, d.Range.Low)
		}

		var err error
		switch sec.Kind {
		case parser.SectionInput:
			_, err = m.NewInput(d.Name, d.Range.Width())
		case parser.SectionOutput:
			_, err = m.NewOutput(d.Name, d.Range.Width())
		case parser.SectionWire:
			_, err = m.NewSignal(d.Name, d.Range.Width())
		}
		if err != nil {
			return fmt.Errorf("%s %s: %w", sec.Kind, sec.Range, err)
		}
	}
	return nil
}
