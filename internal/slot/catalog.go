// Package slot holds the fixed daily time-slot catalog and the logic that
// places a point-in-time event into a slot.
package slot

// ID identifies a catalog slot. The set is closed: values outside the
// constants below are not valid slot ids.
type ID string

const (
	Early     ID = "early"
	Midday    ID = "midday"
	Afternoon ID = "afternoon"
	Evening   ID = "evening"
	Meetings  ID = "meetings"
	Buffer    ID = "buffer"
)

// FallbackCapacityHours is used when a view is requested for an id outside
// the catalog. Should not happen with a closed enumeration; kept so capacity
// arithmetic never divides by or compares against zero garbage.
const FallbackCapacityHours = 2.0

// Info is the immutable metadata of a catalog slot. StartHour and EndHour
// are fractional hours on a 24h clock; HasWindow is false for the manual
// buckets (meetings, buffer) which are excluded from time-based matching.
type Info struct {
	ID            ID
	Label         string
	TimeRange     string
	CapacityHours float64
	HasWindow     bool
	StartHour     float64
	EndHour       float64
}

// catalog lists slots in display order. Window bounds must not overlap.
var catalog = []Info{
	{ID: Early, Label: "Deep Work — Early", TimeRange: "07:00–09:00", CapacityHours: 2.0, HasWindow: true, StartHour: 7, EndHour: 9},
	{ID: Midday, Label: "Deep Work — Midday", TimeRange: "10:00–12:30", CapacityHours: 2.5, HasWindow: true, StartHour: 10, EndHour: 12.5},
	{ID: Afternoon, Label: "Deep Work — Afternoon", TimeRange: "14:00–17:00", CapacityHours: 3.0, HasWindow: true, StartHour: 14, EndHour: 17},
	{ID: Evening, Label: "Evening Review", TimeRange: "20:00–21:30", CapacityHours: 1.5, HasWindow: true, StartHour: 20, EndHour: 21.5},
	{ID: Meetings, Label: "Meetings & Calls", TimeRange: "flexible", CapacityHours: 4.0},
	{ID: Buffer, Label: "Buffer", TimeRange: "flexible", CapacityHours: 2.0},
}

// Catalog returns the slots in display order. The returned slice is a copy;
// callers may not mutate the catalog.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks up catalog metadata by id.
func Get(id ID) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// CapacityOf returns the capacity of the given slot, falling back to
// FallbackCapacityHours for unknown ids.
func CapacityOf(id ID) float64 {
	if info, ok := Get(id); ok {
		return info.CapacityHours
	}
	return FallbackCapacityHours
}

// Valid reports whether id names a catalog slot.
func Valid(id ID) bool {
	_, ok := Get(id)
	return ok
}
