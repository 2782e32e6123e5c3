package slot_test

import (
	"testing"

	"deepwork-scheduler/internal/slot"
)

func TestCatalog_OrderAndCapacities(t *testing.T) {
	got := slot.Catalog()

	wantOrder := []slot.ID{slot.Early, slot.Midday, slot.Afternoon, slot.Evening, slot.Meetings, slot.Buffer}
	if len(got) != len(wantOrder) {
		t.Fatalf("catalog has %d slots, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("catalog[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}

	wantCapacity := map[slot.ID]float64{
		slot.Early:     2.0,
		slot.Midday:    2.5,
		slot.Afternoon: 3.0,
		slot.Evening:   1.5,
		slot.Meetings:  4.0,
		slot.Buffer:    2.0,
	}
	for id, want := range wantCapacity {
		if got := slot.CapacityOf(id); got != want {
			t.Errorf("CapacityOf(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := slot.Catalog()
	first[0].CapacityHours = 99

	if got := slot.CapacityOf(slot.Early); got != 2.0 {
		t.Errorf("catalog mutated through returned slice: CapacityOf(early) = %v", got)
	}
}

func TestCapacityOf_UnknownID(t *testing.T) {
	if got := slot.CapacityOf(slot.ID("siesta")); got != slot.FallbackCapacityHours {
		t.Errorf("CapacityOf(unknown) = %v, want fallback %v", got, slot.FallbackCapacityHours)
	}
}

func TestValid(t *testing.T) {
	for _, id := range []slot.ID{slot.Early, slot.Midday, slot.Afternoon, slot.Evening, slot.Meetings, slot.Buffer} {
		if !slot.Valid(id) {
			t.Errorf("Valid(%q) = false, want true", id)
		}
	}
	if slot.Valid(slot.ID("siesta")) {
		t.Error("Valid(unknown) = true, want false")
	}
	if slot.Valid(slot.ID("")) {
		t.Error("Valid(empty) = true, want false")
	}
}

func TestGet(t *testing.T) {
	info, ok := slot.Get(slot.Midday)
	if !ok {
		t.Fatal("Get(midday) not found")
	}
	if !info.HasWindow || info.StartHour != 10 || info.EndHour != 12.5 {
		t.Errorf("Get(midday) window = (%v, %v, %v), want (true, 10, 12.5)", info.HasWindow, info.StartHour, info.EndHour)
	}

	buffer, ok := slot.Get(slot.Buffer)
	if !ok {
		t.Fatal("Get(buffer) not found")
	}
	if buffer.HasWindow {
		t.Error("buffer should not participate in time-based matching")
	}
}
