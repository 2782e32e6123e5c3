package model

import "time"

// EventTime is a calendar event boundary: either a timed instant or an
// all-day date. AllDay is true when the source carried a date with no
// time-of-day component.
type EventTime struct {
	At     time.Time
	AllDay bool
}

// CalendarEvent is an externally sourced, read-only calendar entry.
type CalendarEvent struct {
	ID             string
	Summary        string
	Start          EventTime
	End            EventTime
	ConferenceLink string
}

// IsAllDay reports whether the event spans the whole day rather than a
// specific time window.
func (e CalendarEvent) IsAllDay() bool {
	return e.Start.AllDay
}
