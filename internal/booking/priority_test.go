package booking

import "testing"

func TestNormalizePriority_DefaultsToMedium(t *testing.T) {
	for _, s := range []string{"", "urgent", "HIGH", "Medium"} {
		if got := NormalizePriority(s); got != PriorityMedium {
			t.Fatalf("NormalizePriority(%q) = %s, want medium", s, got)
		}
	}
	for _, s := range []string{"low", "medium", "high"} {
		if got := NormalizePriority(s); got != Priority(s) {
			t.Fatalf("NormalizePriority(%q) = %s, want %s", s, got, s)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatalf("rank order must be high < medium < low")
	}
}
