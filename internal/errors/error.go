package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
)

// Category groups error codes by the stage that raised them.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryDocument Category = "document"
	CategoryConfig   Category = "config"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// Location is a position in a document or config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns file:line or file:line:column.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// WelgoError is a coded error with an optional file location and a hint on
// how to fix it.
type WelgoError struct {
	Code     string
	Category Category
	Message  string

	// Detail is a longer explanation of this occurrence.
	Detail string

	Location *Location

	// Source holds the lines around Location, starting at SourceStart.
	Source      []string
	SourceStart int

	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error returns "[location: ]code: message".
func (e *WelgoError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WelgoError) Unwrap() error {
	return e.Wrapped
}

// LogValue groups the error's fields so slog handlers log them as
// structured attributes.
func (e *WelgoError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("code", e.Code), slog.String("message", e.Message)}
	if e.Category != "" {
		attrs = append(attrs, slog.String("category", string(e.Category)))
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.Location != nil {
		attrs = append(attrs, slog.String("location", e.Location.String()))
	}
	if e.Wrapped != nil {
		attrs = append(attrs, slog.String("cause", e.Wrapped.Error()))
	}
	return slog.GroupValue(attrs...)
}

// WithLocation records where the error occurred and, when the file can be
// read, the surrounding source lines.
func (e *WelgoError) WithLocation(file string, line, column int) *WelgoError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Source, e.SourceStart = sourceLines(file, line, 2)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *WelgoError) WithSuggestion(s string) *WelgoError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered detail text.
func (e *WelgoError) WithDetail(d string) *WelgoError {
	e.Detail = d
	return e
}

// Wrap sets the underlying cause.
func (e *WelgoError) Wrap(err error) *WelgoError {
	e.Wrapped = err
	return e
}

// sourceLines returns up to radius lines either side of line, and the
// number of the first line returned.
func sourceLines(file string, line, radius int) ([]string, int) {
	f, err := os.Open(file)
	if err != nil {
		return nil, 0
	}
	defer f.Close()

	first := max(line-radius, 1)
	var lines []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan() && n <= line+radius; n++ {
		if n >= first {
			lines = append(lines, scanner.Text())
		}
	}
	if len(lines) == 0 {
		return nil, 0
	}
	return lines, first
}

// New creates a WelgoError from a registered code.
func New(code string) *WelgoError {
	t, ok := registry[code]
	if !ok {
		return &WelgoError{Code: code, Message: "Unknown error"}
	}
	return &WelgoError{
		Code:     code,
		Category: t.category,
		Message:  t.message,
		Detail:   t.detail,
	}
}

// FromError returns the first WelgoError in err's chain, or wraps err in a
// new error with code.
func FromError(err error, code string) *WelgoError {
	if err == nil {
		return nil
	}
	var we *WelgoError
	if stderrors.As(err, &we) {
		return we
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first WelgoError in err's chain.
func CodeOf(err error) string {
	var we *WelgoError
	if stderrors.As(err, &we) {
		return we.Code
	}
	return ""
}

// HasCode reports whether err's chain contains a WelgoError with code.
func HasCode(err error, code string) bool {
	for err != nil {
		var we *WelgoError
		if !stderrors.As(err, &we) {
			return false
		}
		if we.Code == code {
			return true
		}
		err = we.Wrapped
	}
	return false
}

// Attr returns the "error" log attribute for err. A WelgoError anywhere in
// the chain is logged as a group.
func Attr(err error) slog.Attr {
	var we *WelgoError
	if stderrors.As(err, &we) {
		return slog.Any("error", we)
	}
	return slog.Any("error", err)
}
