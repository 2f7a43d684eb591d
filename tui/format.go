package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatTime formats a time for display.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatNumber formats a number with thousand separators.
func FormatNumber(n int) string {
	if n < 1000 && n > -1000 {
		return strconv.Itoa(n)
	}
	return formatNumberWithSep(n)
}

func formatNumberWithSep(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var result strings.Builder
	l := len(s)
	for i, c := range s {
		if i > 0 && (l-i)%3 == 0 {
			result.WriteByte(',')
		}
		result.WriteRune(c)
	}
	return sign + result.String()
}

// FormatValue formats a bucket value, dropping a zero fraction.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return FormatNumber(int(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// TruncateString truncates a string to the given length.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string to the right to achieve the given width.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// HorizontalLine returns a horizontal line of the given width.
func HorizontalLine(width int) string {
	return strings.Repeat("─", width)
}

// Bar draws value as a proportion of peak over width cells.
func Bar(value, peak float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if peak > 0 {
		filled = min(int(value/peak*float64(width)+0.5), width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatAny(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
