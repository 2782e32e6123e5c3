package gcalendar

import "time"

// EventTime is an event boundary: a timed instant, or an all-day date when
// the source carried no time-of-day component.
type EventTime struct {
	At     time.Time
	AllDay bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID             string
	Summary        string
	Start          EventTime
	End            EventTime
	ConferenceLink string
}
