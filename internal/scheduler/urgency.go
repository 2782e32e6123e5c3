package scheduler

import (
	"fmt"
	"time"
)

// Urgency is the display-only due-date bucket of a candidate. It never
// affects ranking beyond what days-until-due already contributes.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencySoon     Urgency = "soon"      // within 3 days
	UrgencyThisWeek Urgency = "this_week" // within 7 days
	UrgencyLater    Urgency = "later"
	UrgencyNone     Urgency = "none" // no due date
)

// ClassifyUrgency buckets a days-until-due value. Pure.
func ClassifyUrgency(daysUntilDue int) Urgency {
	switch {
	case daysUntilDue < 0:
		return UrgencyOverdue
	case daysUntilDue == 0:
		return UrgencyToday
	case daysUntilDue == 1:
		return UrgencyTomorrow
	case daysUntilDue <= 3:
		return UrgencySoon
	case daysUntilDue <= 7:
		return UrgencyThisWeek
	default:
		return UrgencyLater
	}
}

// UrgencyLabel renders the bucket for display. "Later" shows the literal date.
func UrgencyLabel(daysUntilDue int, due time.Time) string {
	switch ClassifyUrgency(daysUntilDue) {
	case UrgencyOverdue:
		return fmt.Sprintf("Overdue by %dd", -daysUntilDue)
	case UrgencyToday:
		return "Due today"
	case UrgencyTomorrow:
		return "Due tomorrow"
	case UrgencySoon:
		return fmt.Sprintf("Due in %dd", daysUntilDue)
	case UrgencyThisWeek:
		return fmt.Sprintf("Due in %dd", daysUntilDue)
	default:
		return "Due " + due.Format("2006-01-02")
	}
}
