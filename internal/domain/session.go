package domain

import "context"

// SessionUser is the identity attached to a session after a successful
// login or signup.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SlotStore is the port for durable key-value slots. Get reports false for
// a missing key.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
