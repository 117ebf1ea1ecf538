// Package identity issues opaque account ids for provisioned users.
//
// Provisioning only depends on the Provider interface so the backing service
// can be swapped (or faked in tests) without touching the services layer.
package identity

import (
	"context"
	"errors"
)

// ErrEmailExists is returned when an account with the same email already
// exists. It is the only provider error the HTTP layer distinguishes.
var ErrEmailExists = errors.New("an account with this email already exists")

// Provider creates identity accounts from email + password credentials and
// returns the issued uid. Duplicate emails must be rejected with
// ErrEmailExists.
type Provider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}
