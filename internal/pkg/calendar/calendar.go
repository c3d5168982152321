// Package calendar expands repeating events into concrete occurrences.
package calendar

import (
	"fmt"
	"iter"
	"time"
)

// NoRepeat is the repeat value for a single, non-repeating event.
const NoRepeat = "no"

// Period is how far apart the occurrences of a repeating event are.
type Period int

const (
	Daily Period = iota + 1
	Weekly
	BiWeekly
	Monthly
	Yearly
)

var periodNames = map[string]Period{
	"daily":    Daily,
	"weekly":   Weekly,
	"biweekly": BiWeekly,
	"monthly":  Monthly,
	"yearly":   Yearly,
}

var periodStrings = [...]string{
	Daily:    "daily",
	Weekly:   "weekly",
	BiWeekly: "biweekly",
	Monthly:  "monthly",
	Yearly:   "yearly",
}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodStrings[p]
}

// ParsePeriod resolves a repeat value. ok is false for NoRepeat.
func ParsePeriod(repeat string) (period Period, ok bool, err error) {
	if repeat == NoRepeat {
		return 0, false, nil
	}

	period, found := periodNames[repeat]
	if !found {
		return 0, false, fmt.Errorf("the repeat value '%s' is not allowed. The only allowed values are 'no', 'daily', 'weekly', 'biweekly', 'monthly', or 'yearly'", repeat)
	}

	return period, true, nil
}

// DaysIn returns the number of days in the month of t.
func DaysIn(t time.Time) int {
	switch t.Month() {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		if IsLeapYear(t.Year()) {
			return 29
		}
		return 28
	}
}

// IsLeapYear applies the Gregorian leap year rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Days is how many days an occurrence at t is from the next one.
func (p Period) Days(t time.Time) int {
	switch p {
	case Daily:
		return 1
	case Weekly:
		return 7
	case BiWeekly:
		return 14
	case Monthly:
		return DaysIn(t)
	case Yearly:
		return 365
	default:
		return 0
	}
}

// Occurrence is one concrete call and optional release time of an event.
type Occurrence struct {
	CallTime    time.Time
	ReleaseTime *time.Time
}

// Schedule describes a run of occurrences. Its zero Period means no repeat.
type Schedule struct {
	Start  Occurrence
	Period Period
	Until  time.Time
}

// Occurrences yields the start occurrence, then one per period step while the
// call time's date is strictly before the until date. Steps are whole days on
// the wall clock, so release times keep their offset from call times. Each
// call starts over from Start.
func (s Schedule) Occurrences() iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		current := s.Start
		if !yield(current) {
			return
		}

		until := dateOf(s.Until)
		for {
			days := s.Period.Days(current.CallTime)
			if days <= 0 {
				return
			}

			next := Occurrence{CallTime: current.CallTime.AddDate(0, 0, days)}
			if current.ReleaseTime != nil {
				release := current.ReleaseTime.AddDate(0, 0, days)
				next.ReleaseTime = &release
			}

			if !dateOf(next.CallTime).Before(until) {
				return
			}
			if !yield(next) {
				return
			}
			current = next
		}
	}
}

// Expand collects the occurrences of a schedule.
func Expand(callTime time.Time, releaseTime *time.Time, period Period, until time.Time) []Occurrence {
	s := Schedule{
		Start:  Occurrence{CallTime: callTime, ReleaseTime: releaseTime},
		Period: period,
		Until:  until,
	}

	var occurrences []Occurrence
	for o := range s.Occurrences() {
		occurrences = append(occurrences, o)
	}
	return occurrences
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
