package options

import (
	"fmt"
	"time"

	"github.com/safedep/timelineviewer/core/record"
	"github.com/spf13/cast"
)

// String reads name as text.
func (s *Store) String(name Name) string {
	return cast.ToString(s.Get(name))
}

// Int reads name as an integer.
func (s *Store) Int(name Name) int {
	return cast.ToInt(s.Get(name))
}

// Strings reads name as a list of strings.
func (s *Store) Strings(name Name) []string {
	return cast.ToStringSlice(s.Get(name))
}

// Margins reads displayMargins. Maps with top/right/bottom/left keys are accepted.
func (s *Store) Margins() Margins {
	switch v := s.Get(DisplayMargins).(type) {
	case Margins:
		return v
	case *Margins:
		if v != nil {
			return *v
		}
	case map[string]int, map[string]any, map[any]any:
		m := cast.ToStringMapInt(v)
		return Margins{Top: m["top"], Right: m["right"], Bottom: m["bottom"], Left: m["left"]}
	}
	return defaults[DisplayMargins].(Margins)
}

// CountHandler reads dataCountHandler. A nil value counts every event as 1.
func (s *Store) CountHandler() CountHandler {
	switch v := s.Get(DataCountHandler).(type) {
	case CountHandler:
		if v != nil {
			return v
		}
	case func(*record.Event) float64:
		if v != nil {
			return v
		}
	case func(*record.Event) int:
		if v != nil {
			return func(e *record.Event) float64 { return float64(v(e)) }
		}
	case string:
		field := v
		return func(e *record.Event) float64 { return cast.ToFloat64(e.Get(field)) }
	case nil:
	default:
		panic(fmt.Sprintf("option %s: unsupported value of type %T", DataCountHandler, v))
	}
	return defaults[DataCountHandler].(CountHandler)
}

// DateHandler reads dataDateHandler. A string value names the attribute holding the date.
func (s *Store) DateHandler() DateHandler {
	switch v := s.Get(DataDateHandler).(type) {
	case DateHandler:
		if v != nil {
			return v
		}
	case func(*record.Event) any:
		if v != nil {
			return v
		}
	case string:
		field := v
		return func(e *record.Event) any { return e.Get(field) }
	case nil:
	default:
		panic(fmt.Sprintf("option %s: unsupported value of type %T", DataDateHandler, v))
	}
	return defaults[DataDateHandler].(DateHandler)
}

// Columns reads dataTableColumns. Nil means the option is absent.
func (s *Store) Columns() []Column {
	switch v := s.Get(DataTableColumns).(type) {
	case []Column:
		if len(v) == 0 {
			return nil
		}
		return v
	case []string:
		if len(v) == 0 {
			return nil
		}
		cols := make([]Column, len(v))
		for i, field := range v {
			field := field
			cols[i] = Column{Label: field, Value: func(e *record.Event) any { return e.Get(field) }}
		}
		return cols
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("option %s: unsupported value of type %T", DataTableColumns, v))
	}
}

// GroupingRule reads dataTableGroupingRule. Nil means the option is absent.
// A string value names the attribute to group by.
func (s *Store) GroupingRule() GroupingRule {
	switch v := s.Get(DataTableGroupingRule).(type) {
	case GroupingRule:
		return v
	case func(*record.Event) string:
		return v
	case string:
		field := v
		return func(e *record.Event) string { return e.String(field) }
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("option %s: unsupported value of type %T", DataTableGroupingRule, v))
	}
}

// Date reads a start/end date option. auto is true for the Auto sentinel.
// Strings other than Auto are parsed with dataDateFormat, then as RFC 3339.
func (s *Store) Date(name Name) (t time.Time, auto bool, err error) {
	switch v := s.Get(name).(type) {
	case nil:
		return time.Time{}, true, nil
	case time.Time:
		return v, false, nil
	case string:
		if v == Auto || v == "" {
			return time.Time{}, true, nil
		}
		if t, err := record.ParseDate(s.String(DataDateFormat), v); err == nil {
			return t, false, nil
		}
		t, err := cast.ToTimeE(v)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("option %s: %w", name, err)
		}
		return t, false, nil
	default:
		t, err := cast.ToTimeE(v)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("option %s: %w", name, err)
		}
		return t, false, nil
	}
}
