package store

import (
	"fmt"
	"time"
)

// timeLayouts are the text forms SQLite drivers use for DATETIME values.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timeScanner scans a DATETIME column whether the driver returns it as
// time.Time or as text.
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*s.t = time.Time{}
		return nil
	case time.Time:
		*s.t = x
		return nil
	case string:
		return s.parse(x)
	case []byte:
		return s.parse(string(x))
	case int64:
		*s.t = time.Unix(x, 0).UTC()
		return nil
	default:
		return fmt.Errorf("unsupported time value %T", v)
	}
}

func (s timeScanner) parse(v string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("parse time %q", v)
}
