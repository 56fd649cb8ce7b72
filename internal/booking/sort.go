package booking

import "sort"

// SortPendingQueue orders the admin pending queue: priority rank ascending
// (high first), then created_at ascending. The input comes back from the
// store ordered by created_at; the stable sort keeps that order within each
// priority, so the result is identical whether or not the store could apply
// a composite ordering itself.
func SortPendingQueue(items []Detail) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
}
