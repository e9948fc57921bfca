package exdecode

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a requested sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// CompileError represents an error while compiling one sheet.
type CompileError struct {
	SheetName string
	Component string // "grid", "sections", "declarations", "match"
	Err       error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// NewCompileError creates a new CompileError.
func NewCompileError(sheetName, component string, err error) *CompileError {
	return &CompileError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
