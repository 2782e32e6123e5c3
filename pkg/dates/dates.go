package dates

import (
	"fmt"
	"time"
)

// DayKeyPrefix is prepended to the ISO date when deriving a day aggregate key.
const DayKeyPrefix = "day-"

// Clock performs timezone-aware day arithmetic for the scheduler.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the given IANA timezone string.
// e.g. "Europe/London"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// NewClockAt creates a clock whose current instant is supplied by now,
// for callers that replay a fixed scheduling day.
func NewClockAt(timezone string, now func() time.Time) (*Clock, error) {
	c, err := NewClock(timezone)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the clock's timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// DayKey derives the stable identifier grouping tasks and slot views under a
// calendar date. Deterministic, no side effects.
func (c *Clock) DayKey(t time.Time) string {
	return DayKeyPrefix + c.StartOfDay(t).Format("2006-01-02")
}

// StartOfDay returns midnight at the start of the given day in the clock's timezone.
func (c *Clock) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// SameDay reports whether two instants fall on the same calendar date in the
// clock's timezone.
func (c *Clock) SameDay(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}

// DaysUntil returns the whole number of calendar days from now to due.
// Negative for overdue, zero for due today.
func (c *Clock) DaysUntil(now, due time.Time) int {
	from := c.StartOfDay(now)
	to := c.StartOfDay(due)
	// Round, not truncate: DST transitions make some local days 23 or 25
	// hours long.
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

// WeekStart returns midnight of the Monday of the week containing t.
func (c *Clock) WeekStart(t time.Time) time.Time {
	day := c.StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// ParseDay parses a YYYY-MM-DD string as midnight in the clock's timezone.
func (c *Clock) ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
