package einvoice

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date without a time component, as used by the date
// fields of business documents.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// dateLayouts lists the accepted layouts. UBL permits an optional zone
// offset on dates, which is ignored once parsed.
var dateLayouts = []string{"2006-01-02", "2006-01-02Z07:00"}

// ParseDate converts the text content of a date element. Anything that
// is not a calendar date fails with ErrConversion.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q is not a calendar date", ErrConversion, s)
}

// String formats the date in ISO 8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// MarshalJSON renders the date as its ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	nd, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
