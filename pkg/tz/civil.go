package tz

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for civil date-times on the wire. Offsets are tolerated
// on input but always discarded: only the wall-clock fields are kept, since
// every client-submitted time is understood to be in the business timezone.
var civilTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

const civilDateLayout = "2006-01-02"

// CivilTime is a wall-clock date and time with no timezone attached.
// It is meaningless as an instant until interpreted by a Normalizer.
type CivilTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

func ParseCivilTime(s string) (CivilTime, error) {
	for _, layout := range civilTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return CivilTime{
			Year:   t.Year(),
			Month:  t.Month(),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
			Second: t.Second(),
		}, nil
	}
	return CivilTime{}, fmt.Errorf("invalid date-time %q: expected YYYY-MM-DDTHH:MM[:SS]", s)
}

func (c CivilTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

func (c CivilTime) IsZero() bool {
	return c == CivilTime{}
}

// In materialises the wall-clock fields in the given location.
func (c CivilTime) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, loc)
}

func (c CivilTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *CivilTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseCivilTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CivilDate is a calendar date in the business timezone.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Midnight returns the start of the calendar day in the given location.
func (d CivilDate) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}
