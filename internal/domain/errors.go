package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTemplate          = errors.New("invalid command template")
	ErrCalculation       = errors.New("invalid calculation")
	ErrRecognition       = errors.New("speech recognition failed")
	ErrAppNotFound       = errors.New("app not found")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
)

// TemplateError reports a template that cannot be compiled. Index is the
// template's position in the catalog.
type TemplateError struct {
	Index   int
	Pattern string
	Reason  string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %d %q: %s", e.Index, e.Pattern, e.Reason)
}

func (e *TemplateError) Unwrap() error { return ErrTemplate }

type CalculationError struct {
	Expression string
	Reason     string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculate %q: %s", e.Expression, e.Reason)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }
