// Package tz converts between wall-clock times in the fixed business
// timezone and absolute UTC instants. Every stored instant is UTC; every
// comparison against a client-submitted time goes through a Normalizer,
// never directly against the raw wall-clock value.
package tz

import (
	"fmt"
	"time"
)

type Normalizer struct {
	loc *time.Location
}

// NewNormalizer resolves the named timezone from the system tz database.
// Failure here is a deployment problem and is treated as fatal by callers.
func NewNormalizer(name string) (*Normalizer, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load business timezone %q: %w", name, err)
	}
	return &Normalizer{loc: loc}, nil
}

func NewNormalizerIn(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToUTC interprets a civil time as business-local wall clock and returns
// the single UTC instant it denotes.
func (n *Normalizer) ToUTC(c CivilTime) time.Time {
	return c.In(n.loc).UTC()
}

// ToLocal converts an absolute instant to business-local time for display.
func (n *Normalizer) ToLocal(t time.Time) time.Time {
	return t.In(n.loc)
}

// ToCivil is the inverse of ToUTC for times outside tz transitions.
func (n *Normalizer) ToCivil(t time.Time) CivilTime {
	local := t.In(n.loc)
	return CivilTime{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}
}

// DayRange returns the UTC instants covering the full local calendar day:
// local midnight up to (exclusive) the following local midnight. The day
// boundary tracks the business timezone, not raw UTC midnight.
func (n *Normalizer) DayRange(d CivilDate) (time.Time, time.Time) {
	start := d.Midnight(n.loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
