package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth checks the shared admin password against a bcrypt hash.
type AdminAuth struct {
	hash []byte
}

// NewAdminAuth accepts a ready bcrypt hash, or a plain password that is
// hashed once. An empty configuration rejects every request.
func NewAdminAuth(passwordHash, password string) (*AdminAuth, error) {
	passwordHash = strings.TrimSpace(passwordHash)
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("parse admin password hash: %w", err)
		}
		return &AdminAuth{hash: []byte(passwordHash)}, nil
	}

	if password == "" {
		return &AdminAuth{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminAuth{hash: hash}, nil
}

func (a *AdminAuth) Enabled() bool {
	return a != nil && len(a.hash) > 0
}

func (a *AdminAuth) Verify(ctx context.Context, password string) error {
	_, span := startUsecaseSpan(ctx, "usecase.AdminAuth.Verify")
	defer span.End()

	if !a.Enabled() {
		return fmt.Errorf("%w: admin access is not configured", ErrUnauthorized)
	}
	if password == "" {
		return fmt.Errorf("%w: admin password is required", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return fmt.Errorf("%w: invalid admin password", ErrUnauthorized)
	}
	return nil
}
