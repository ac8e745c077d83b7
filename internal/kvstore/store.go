package kvstore

import (
	"context"
	"errors"
)

// Fixed keys the stores persist under.
const (
	KeyUser     = "user"
	KeyBookings = "bookings"
)

var ErrNotFound = errors.New("key not found")

// Store is the key-value persistence contract shared by the session and
// booking-flow stores. Values are JSON-serialized records.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
