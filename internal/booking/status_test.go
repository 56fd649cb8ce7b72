package booking

import (
	"testing"

	"campusbook/internal/audit"
)

func TestParseDecision(t *testing.T) {
	for _, s := range []string{"APPROVED", "REJECTED", "CANCELLED"} {
		if _, err := ParseDecision(s); err != nil {
			t.Fatalf("expected %s to parse, got %v", s, err)
		}
	}
	for _, s := range []string{"PENDING", "approved", "", "DONE"} {
		if _, err := ParseDecision(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestStatusActive(t *testing.T) {
	if !StatusPending.Active() || !StatusApproved.Active() {
		t.Fatalf("pending and approved must be active")
	}
	if StatusRejected.Active() || StatusCancelled.Active() {
		t.Fatalf("rejected and cancelled must not be active")
	}
}

func TestAuditAction(t *testing.T) {
	cases := map[Status]string{
		StatusApproved:  audit.ActionBookingApproved,
		StatusRejected:  audit.ActionBookingRejected,
		StatusCancelled: audit.ActionBookingCancelled,
	}
	for status, want := range cases {
		got, err := AuditAction(status)
		if err != nil {
			t.Fatalf("%s: %v", status, err)
		}
		if got != want {
			t.Fatalf("%s: got %q, want %q", status, got, want)
		}
	}

	if _, err := AuditAction(StatusPending); err == nil {
		t.Fatalf("pending must not map to an audit action")
	}
}
