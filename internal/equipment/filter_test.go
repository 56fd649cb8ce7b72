package equipment

import "testing"

func strPtr(s string) *string { return &s }

func TestFilterBySearch_MatchesNameAndDescription(t *testing.T) {
	items := []Equipment{
		{Name: "Canon EOS R5", Description: strPtr("Mirrorless camera body")},
		{Name: "Tripod", Description: strPtr("Carbon fiber, fluid head")},
		{Name: "Shotgun Mic", Description: nil},
	}

	got := FilterBySearch(items, "CAMERA")
	if len(got) != 1 || got[0].Name != "Canon EOS R5" {
		t.Fatalf("expected only the camera, got %d items", len(got))
	}

	got = FilterBySearch(items, "tripod")
	if len(got) != 1 || got[0].Name != "Tripod" {
		t.Fatalf("expected only the tripod, got %d items", len(got))
	}
}

func TestFilterBySearch_EmptyTermKeepsAll(t *testing.T) {
	items := []Equipment{{Name: "A"}, {Name: "B"}}
	if got := FilterBySearch(items, "  "); len(got) != 2 {
		t.Fatalf("expected all items, got %d", len(got))
	}
}

func TestFilterBySearch_NoMatch(t *testing.T) {
	items := []Equipment{{Name: "Projector"}}
	if got := FilterBySearch(items, "oscilloscope"); len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}
