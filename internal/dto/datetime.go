package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTime parses timestamps from JSON as either date-only ("2006-01-02")
// or RFC3339. Date-only is stored as start of that day in UTC.
type DateTime struct{ t time.Time }

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return fmt.Errorf("empty timestamp")
	}
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only (no time component) means start of day UTC
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp must be a date (YYYY-MM-DD) or RFC3339 datetime")
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(time.RFC3339))
}

// Time returns the parsed value.
func (d DateTime) Time() time.Time { return d.t }

// TimePtr converts an optional DateTime to *time.Time for the domain layer.
func TimePtr(d *DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.t
	return &t
}
