package otp

import (
	"context"

	"github.com/meinhoongagan/service-marketplace/utils"
)

// Gate issues and checks the one-time codes that gate account verification.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Issue generates a fresh 6-digit code for the email and stores it,
// replacing any earlier code. Re-issuing is allowed at any time.
func (g *Gate) Issue(ctx context.Context, email string) (string, error) {
	code := utils.GenerateOTP()
	if err := g.store.Set(ctx, email, code); err != nil {
		return "", err
	}
	return code, nil
}

// Verify reports whether code matches the most recently issued code for the
// email. A failed attempt leaves the code in place so the user can retry.
func (g *Gate) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := g.store.Get(ctx, email)
	if err == ErrNoCode {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}

// Consume drops the code for the email after a successful verification.
func (g *Gate) Consume(ctx context.Context, email string) error {
	return g.store.Invalidate(ctx, email)
}
