package domain

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by DurableSlot.Get when nothing is stored under the key.
var ErrSlotEmpty = errors.New("slot is empty")

// DefaultSlotKey names the slot that holds the serialized identity.
const DefaultSlotKey = "user"

// DurableSlot is cross-restart key/value storage for the session.
type DurableSlot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
