package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

type palette struct {
	reset, red, bold, cyan, gray string
}

var ansi = palette{
	reset: "\033[0m",
	red:   "\033[31m",
	bold:  "\033[1m",
	cyan:  "\033[36m",
	gray:  "\033[90m",
}

func (p palette) paint(seq, s string) string {
	if seq == "" {
		return s
	}
	return seq + s + p.reset
}

// Format renders e for a terminal:
//
//	error E020: Unknown component
//	  --> pages/index.yaml:4:10
//	      3 |   children:
//	 >    4 |     - tag: Card
//	        |          ^
//	  No component named "Card" is registered.
//	  hint: Registered components: Each, Raw, Value
//
// With color set the header, location and marker use ANSI colors.
func (e *WelgoError) Format(color bool) string {
	var p palette
	if color {
		p = ansi
	}

	var b strings.Builder
	b.WriteString(p.paint(p.red+p.bold, "error"))
	if e.Code != "" {
		b.WriteString(" " + p.paint(p.bold, e.Code))
	}
	b.WriteString(": " + e.Message + "\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  --> %s\n", p.paint(p.cyan, e.Location.String()))
		e.writeSource(&b, p)
	}
	for _, line := range wrap(e.Detail, 72) {
		b.WriteString("  " + line + "\n")
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n", p.paint(p.cyan, "hint:"), e.Suggestion)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s %v\n", p.paint(p.gray, "cause:"), e.Wrapped)
	}
	return b.String()
}

func (e *WelgoError) writeSource(b *strings.Builder, p palette) {
	bar := p.paint(p.gray, "|")
	for i, text := range e.Source {
		n := e.SourceStart + i
		marker := "   "
		if n == e.Location.Line {
			marker = p.paint(p.red, " > ")
		}
		fmt.Fprintf(b, "%s%4d %s %s\n", marker, n, bar, text)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "        %s %s%s\n", bar, strings.Repeat(" ", e.Location.Column-1), p.paint(p.red, "^"))
		}
	}
}

// Fprint writes err to w. WelgoErrors get the full Format output; other
// errors a single line.
func Fprint(w io.Writer, err error, color bool) {
	var we *WelgoError
	if stderrors.As(err, &we) {
		fmt.Fprint(w, we.Format(color))
		return
	}
	p := palette{}
	if color {
		p = ansi
	}
	fmt.Fprintf(w, "%s: %v\n", p.paint(p.red+p.bold, "error"), err)
}

// wrap splits text into lines of at most width bytes, breaking on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
