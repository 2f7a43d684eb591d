package tui

import (
	"fmt"
	"io"
	"strings"
)

// tableWriter keeps the first write error and skips every write after it.
type tableWriter struct {
	w   io.Writer
	err error
}

func (tw *tableWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *tableWriter) println(args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, args...)
}

// row writes cells padded to widths, two spaces apart. Cells past the last
// width are dropped; trailing padding is trimmed.
func (tw *tableWriter) row(cells []string, widths []int, style func(string) string) {
	var b strings.Builder
	for i, c := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(PadRight(c, widths[i]))
	}

	line := strings.TrimRight(b.String(), " ")
	if style != nil {
		line = style(line)
	}
	tw.println(line)
}

// Err returns the first write error, or nil.
func (tw *tableWriter) Err() error {
	return tw.err
}
