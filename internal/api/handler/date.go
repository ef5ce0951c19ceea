package handler

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date marshals as a plain calendar date ("2006-01-02"), matching the
// wire format of dueDate, dateOfCreation and dateOfBirth.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	d.Time = t.UTC()
	return nil
}

// dateOrNil converts an optional date to a time pointer for service inputs.
func dateOrNil(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// datePtr wraps a time value for response DTOs, omitting zero values.
func datePtr(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	return &Date{t}
}
