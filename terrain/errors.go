package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrUnknownRune indicates a character outside 'a'..'z', 'S', 'E'.
	ErrUnknownRune = errors.New("terrain: unknown terrain character")
	// ErrMarkerCount indicates the grid does not hold exactly one 'S' and one 'E'.
	ErrMarkerCount = errors.New("terrain: grid must contain exactly one start and one end marker")
	// ErrOutOfBounds indicates a cell outside the grid was requested.
	ErrOutOfBounds = errors.New("terrain: cell out of bounds")
)

// FormatError reports why raw terrain text could not be turned into a Grid.
// Line and Column are 1-based; zero means the failure is not tied to a position.
// Err is one of the sentinel errors above and is reachable via errors.Is.
type FormatError struct {
	Line, Column int
	Err          error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%v (line %d, column %d)", e.Err, e.Line, e.Column)
	case e.Line > 0:
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	default:
		return e.Err.Error()
	}
}

// Unwrap exposes the underlying sentinel.
func (e *FormatError) Unwrap() error { return e.Err }
