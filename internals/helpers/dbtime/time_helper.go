// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"
)

// DateFormat is the layout of questions.activated_date.
const DateFormat = "2006-01-02"

const DefaultTimezone = "Asia/Seoul"

// Clock is the time source for anything that depends on "today".
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// LoadLocation resolves name, falling back to Asia/Seoul and then UTC.
func LoadLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Today formats the current date of clock in loc.
func Today(clock Clock, loc *time.Location) string {
	return clock.Now().In(loc).Format(DateFormat)
}

// Yesterday formats the day before Today.
func Yesterday(clock Clock, loc *time.Location) string {
	return clock.Now().In(loc).AddDate(0, 0, -1).Format(DateFormat)
}

// ResolveDate maps the literal "today" to Today and returns anything else as is.
func ResolveDate(date string, clock Clock, loc *time.Location) string {
	date = strings.TrimSpace(date)
	if strings.EqualFold(date, "today") {
		return Today(clock, loc)
	}
	return date
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
