package booking

import "time"

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Adjoining intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// FindConflict returns the first active booking whose interval overlaps
// [start,end), or nil. Callers pass the PENDING/APPROVED bookings for one
// piece of equipment; the list is short, so a linear scan is fine.
func FindConflict(start, end time.Time, existing []Booking) *Booking {
	for i := range existing {
		b := &existing[i]
		if !b.Status.Active() {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}
