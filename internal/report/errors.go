// internal/report/errors.go
package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReport is returned when no benchmark report can be located.
	ErrNoReport = errors.New("no benchmark report found")
	// ErrInvalidReport is returned for malformed JSON or a document missing required fields.
	ErrInvalidReport = errors.New("invalid benchmark report")
	// ErrEmptySeries is returned when a statistic or histogram is requested over no values.
	ErrEmptySeries = errors.New("empty data series")
)

// InputError ties an input failure to the file it came from.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err stems from the report rather than from rendering.
func IsInputError(err error) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return true
	}
	return errors.Is(err, ErrNoReport) || errors.Is(err, ErrInvalidReport) || errors.Is(err, ErrEmptySeries)
}
