package booking

import (
	"testing"
	"time"
)

func pendingDetail(id string, p Priority, createdAt time.Time) Detail {
	return Detail{Booking: Booking{ID: id, Status: StatusPending, Priority: p, CreatedAt: createdAt}}
}

func TestSortPendingQueue_PriorityThenCreatedAt(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// Created in order: low, high, medium.
	items := []Detail{
		pendingDetail("low", PriorityLow, base),
		pendingDetail("high", PriorityHigh, base.Add(time.Minute)),
		pendingDetail("medium", PriorityMedium, base.Add(2*time.Minute)),
	}

	SortPendingQueue(items)

	want := []string{"high", "medium", "low"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestSortPendingQueue_TiesKeepCreatedAtOrder(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// Input arrives ordered by created_at ascending, as the store returns it.
	items := []Detail{
		pendingDetail("m1", PriorityMedium, base),
		pendingDetail("h1", PriorityHigh, base.Add(time.Minute)),
		pendingDetail("m2", PriorityMedium, base.Add(2*time.Minute)),
		pendingDetail("h2", PriorityHigh, base.Add(3*time.Minute)),
	}

	SortPendingQueue(items)

	want := []string{"h1", "h2", "m1", "m2"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ID, id)
		}
	}
}
