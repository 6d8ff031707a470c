package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Precondition errors
	ErrEmptyInput      = errors.New("empty input: no observations")
	ErrDegenerateTable = errors.New("degenerate table: fewer than 2 categories")
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnMismatch  = errors.New("columns have different lengths")

	// Numerical defense errors
	ErrZeroExpectedCell = errors.New("zero expected cell count")
)

// Error constructors with context
func NewDegenerateTableError(axis string, categories int) error {
	return fmt.Errorf("%w: %s column has %d", ErrDegenerateTable, axis, categories)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func NewColumnMismatchError(colA string, lenA int, colB string, lenB int) error {
	return fmt.Errorf("%w: %q has %d values, %q has %d", ErrColumnMismatch, colA, lenA, colB, lenB)
}

func NewZeroExpectedCellError(row, col int) error {
	return fmt.Errorf("%w at cell (%d,%d)", ErrZeroExpectedCell, row, col)
}

// Error checking helpers
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrDegenerateTable) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrColumnMismatch)
}
