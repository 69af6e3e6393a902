package otp

import (
	"context"
	"testing"
)

func TestIssueAndVerify(t *testing.T) {
	gate := NewGate(NewMemoryStore())
	ctx := context.Background()

	code, err := gate.Issue(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	ok, err := gate.Verify(ctx, "a@b.com", code)
	if err != nil || !ok {
		t.Fatalf("expected verify to succeed, got ok=%v err=%v", ok, err)
	}
}

func TestVerifyWrongCode(t *testing.T) {
	gate := NewGate(NewMemoryStore())
	ctx := context.Background()

	code, _ := gate.Issue(ctx, "a@b.com")
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, err := gate.Verify(ctx, "a@b.com", wrong)
	if err != nil {
		t.Fatalf("verify errored: %v", err)
	}
	if ok {
		t.Fatal("wrong code must not verify")
	}

	// failed attempt keeps the code usable
	ok, _ = gate.Verify(ctx, "a@b.com", code)
	if !ok {
		t.Fatal("correct code should still verify after a failed attempt")
	}
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	gate := NewGate(NewMemoryStore())
	ctx := context.Background()

	first, _ := gate.Issue(ctx, "a@b.com")
	second, err := gate.Issue(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("re-issue failed: %v", err)
	}

	if first != second {
		ok, _ := gate.Verify(ctx, "a@b.com", first)
		if ok {
			t.Fatal("stale code must not verify after re-issue")
		}
	}
	ok, _ := gate.Verify(ctx, "a@b.com", second)
	if !ok {
		t.Fatal("latest code must verify")
	}
}

func TestVerifyWithoutIssue(t *testing.T) {
	gate := NewGate(NewMemoryStore())

	ok, err := gate.Verify(context.Background(), "nobody@b.com", "123456")
	if err != nil {
		t.Fatalf("verify errored: %v", err)
	}
	if ok {
		t.Fatal("verify must fail for an email with no issued code")
	}
}

func TestConsume(t *testing.T) {
	gate := NewGate(NewMemoryStore())
	ctx := context.Background()

	code, _ := gate.Issue(ctx, "a@b.com")
	if err := gate.Consume(ctx, "a@b.com"); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	ok, _ := gate.Verify(ctx, "a@b.com", code)
	if ok {
		t.Fatal("consumed code must not verify again")
	}
}
