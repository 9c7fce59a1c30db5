package sqltmpl

import (
	"errors"
	"fmt"

	"github.com/biggeezerdevelopment/lexkit"
)

var (
	ErrUnsupportedValue        = errors.New("unsupported value")
	ErrUnbound                 = errors.New("unbound placeholder")
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
	ErrInvalidName             = errors.New("invalid binding name")
	ErrInvalidBatch            = errors.New("invalid bulk batch")

	// ErrUnterminatedQuote is lexkit.ErrUnterminatedQuote, so errors.Is
	// matches either name.
	ErrUnterminatedQuote = lexkit.ErrUnterminatedQuote
)

// TemplateError reports the placeholder that stopped Replace.
type TemplateError struct {
	Pos        int    // byte offset of the opening '{' or quote
	Name       string // placeholder name, without any '=' prefix
	Suggestion string // closest bound name, if any
	Err        error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("sqltmpl: %v at byte %d", e.Err, e.Pos)
	if e.Name != "" {
		msg = fmt.Sprintf("sqltmpl: %v {%s} at byte %d", e.Err, e.Name, e.Pos)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean {%s}?)", e.Suggestion)
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
