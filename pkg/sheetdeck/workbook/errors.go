package workbook

import (
	"errors"
	"fmt"
)

// ErrTooFewSheets indicates the workbook lacks the settings/data sheet pair.
var ErrTooFewSheets = errors.New("workbook must contain at least 2 sheets")

// ErrSlideCountRange indicates the configured slide count is below 2.
var ErrSlideCountRange = errors.New("slide count must be at least 2")

// ValidationError represents a workbook that fails a structural rule.
type ValidationError struct {
	Rule   string // "sheet_count", "slide_count"
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(rule, detail string, err error) *ValidationError {
	return &ValidationError{
		Rule:   rule,
		Detail: detail,
		Err:    err,
	}
}

// CoercionError represents a settings cell whose content could not be
// read as an integer.
type CoercionError struct {
	SheetName string
	Cell      string
	Raw       string
	Err       error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot read cell %s of sheet %q as an integer (value %q)", e.Cell, e.SheetName, e.Raw)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// NewCoercionError creates a new CoercionError.
func NewCoercionError(sheetName, cell, raw string, err error) *CoercionError {
	return &CoercionError{
		SheetName: sheetName,
		Cell:      cell,
		Raw:       raw,
		Err:       err,
	}
}
