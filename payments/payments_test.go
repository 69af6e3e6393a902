package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestParseAmountPaise(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
		ok   bool
	}{
		{"100", 10000, true},
		{"123.45", 12345, true},
		{"123.4", 12340, true},
		{"123.456", 12345, true}, // extra precision truncated
		{"0.99", 99, true},
		{".50", 50, true},
		{float64(250), 25000, true},
		{float64(19.99), 1999, true},
		{"", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{nil, 0, false},
		{"12.x", 0, false},
		{".", 0, false},
		{"+5", 0, false},
	}
	for _, c := range cases {
		got, err := ParseAmountPaise(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseAmountPaise(%v) = %d, %v; want %d", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseAmountPaise(%v) = %d; want error", c.in, got)
		}
	}
}

func TestParseAmountPaiseSignedFraction(t *testing.T) {
	// a sign inside the fraction must not slip through as arithmetic
	for _, in := range []string{"12.-1", "12.+9", "-0.50", "1.2-"} {
		if got, err := ParseAmountPaise(in); err == nil {
			t.Errorf("ParseAmountPaise(%q) = %d; want error", in, got)
		}
	}
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	sig := sign(secret, "order1", "pay1")

	if !VerifySignature("order1", "pay1", sig, secret) {
		t.Fatal("valid signature rejected")
	}
	if VerifySignature("order1", "pay2", sig, secret) {
		t.Fatal("signature for different payment accepted")
	}
	if VerifySignature("order1", "pay1", sig, "other_secret") {
		t.Fatal("signature with wrong secret accepted")
	}
}

func TestVerifySignatureBitFlip(t *testing.T) {
	secret := "test_secret"
	sig := sign(secret, "order1", "pay1")

	// flip one hex character at a time
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		if VerifySignature("order1", "pay1", string(mutated), secret) {
			t.Fatalf("mutated signature at index %d accepted", i)
		}
	}
}
