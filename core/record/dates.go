package record

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateFormat is the strftime pattern applied when none is configured.
const DefaultDateFormat = "%d/%m/%Y"

var (
	// ErrNoDate is recorded when the date handler yields nothing.
	ErrNoDate = errors.New("no date value")

	// ErrBadDate is recorded when a value does not match the date format.
	ErrBadDate = errors.New("unparseable date")
)

// ParseDate resolves raw into an instant. time.Time values pass through;
// strings are parsed with the strftime pattern format; anything else is
// formatted with fmt and parsed as a string.
func ParseDate(format string, raw any) (time.Time, error) {
	if format == "" {
		format = DefaultDateFormat
	}

	var s string
	switch v := raw.(type) {
	case nil:
		return time.Time{}, ErrNoDate
	case time.Time:
		if v.IsZero() {
			return time.Time{}, ErrNoDate
		}
		return v, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, ErrNoDate
		}
		return *v, nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNoDate
	}

	t, err := strftime.Parse(format, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q with format %q: %v", ErrBadDate, s, format, err)
	}
	return t, nil
}

// FormatDate renders t with the strftime pattern format.
func FormatDate(format string, t time.Time) string {
	if format == "" {
		format = DefaultDateFormat
	}
	return strftime.Format(format, t)
}
