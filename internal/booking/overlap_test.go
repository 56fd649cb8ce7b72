package booking

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"contained", at(9, 0), at(17, 0), at(12, 0), at(13, 0), true},
		{"containing", at(12, 0), at(13, 0), at(9, 0), at(17, 0), true},
		{"partial front", at(8, 0), at(10, 0), at(9, 0), at(17, 0), true},
		{"partial back", at(16, 0), at(18, 0), at(9, 0), at(17, 0), true},
		{"identical", at(9, 0), at(17, 0), at(9, 0), at(17, 0), true},
		{"adjoining after", at(17, 0), at(18, 0), at(9, 0), at(17, 0), false},
		{"adjoining before", at(8, 0), at(9, 0), at(9, 0), at(17, 0), false},
		{"disjoint", at(18, 0), at(19, 0), at(9, 0), at(17, 0), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFindConflict_OnlyActiveStatusesBlock(t *testing.T) {
	existing := []Booking{
		{ID: "b1", Status: StatusRejected, StartTime: at(9, 0), EndTime: at(17, 0)},
		{ID: "b2", Status: StatusCancelled, StartTime: at(9, 0), EndTime: at(17, 0)},
	}
	if c := FindConflict(at(12, 0), at(13, 0), existing); c != nil {
		t.Fatalf("terminal non-approved bookings must not block, got conflict %s", c.ID)
	}

	existing = append(existing, Booking{ID: "b3", Status: StatusApproved, StartTime: at(9, 0), EndTime: at(17, 0)})
	c := FindConflict(at(12, 0), at(13, 0), existing)
	if c == nil || c.ID != "b3" {
		t.Fatalf("expected conflict with b3, got %v", c)
	}
}

func TestFindConflict_RequestSequence(t *testing.T) {
	// Request A holds [09:00, 17:00) as PENDING.
	existing := []Booking{
		{ID: "a", Status: StatusPending, StartTime: at(9, 0), EndTime: at(17, 0)},
	}

	// Request B for [12:00, 13:00) must conflict.
	if c := FindConflict(at(12, 0), at(13, 0), existing); c == nil {
		t.Fatalf("expected conflict for contained interval")
	}

	// Request C for [17:00, 18:00) adjoins and must be accepted.
	if c := FindConflict(at(17, 0), at(18, 0), existing); c != nil {
		t.Fatalf("adjoining interval must not conflict, got %s", c.ID)
	}
}
