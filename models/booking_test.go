package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !IsValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []BookingStatus{"", "done", "PENDING", "canceled"} {
		if IsValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tr := range allowed {
		if !ValidTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCompleted},
	}
	for _, tr := range denied {
		if ValidTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"A@B.com":         "a@b.com",
		"  User@Host.IO ": "user@host.io",
		"already@low.com": "already@low.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserRole(t *testing.T) {
	if (&User{IsProvider: true}).Role() != "provider" {
		t.Error("provider user should carry provider role")
	}
	if (&User{}).Role() != "customer" {
		t.Error("non-provider user should carry customer role")
	}
}
