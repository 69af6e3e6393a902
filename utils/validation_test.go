package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.in", "A@B.COM"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{"", "plainaddress", "@missing.com", "user@", "user@host"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	if !ValidatePhone("+919876543210") {
		t.Error("expected international number to be valid")
	}
	if !ValidatePhone("98765 43210") {
		t.Error("expected spaced number to be valid")
	}
	if ValidatePhone("abc") {
		t.Error("expected letters to be invalid")
	}
	if ValidatePhone("0") {
		t.Error("expected single digit to be invalid")
	}
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTP()
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("expected numeric code, got %q", code)
			}
		}
	}
}
