package slot

import "time"

// MapEvent places a calendar event into a catalog slot. Total and
// deterministic: every (start, allDay) pair yields exactly one slot id.
//
// All-day events always land in Meetings. Timed events match the first
// windowed slot containing their local fractional start hour; anything
// outside every window falls back to Meetings.
func MapEvent(start time.Time, allDay bool) ID {
	if allDay {
		return Meetings
	}

	hour := float64(start.Hour()) + float64(start.Minute())/60

	for _, info := range catalog {
		if !info.HasWindow {
			continue
		}
		if inWindow(hour, info.StartHour, info.EndHour) {
			return info.ID
		}
	}

	return Meetings
}

// inWindow tests half-open window membership. Windows spanning midnight
// (start > end) wrap around, matching hours on either side.
func inWindow(hour, start, end float64) bool {
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}
