// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OverviewCache caches serialized billing overviews keyed by user and period.
// A cache miss returns ("", nil); errors are reserved for transport failures.
type OverviewCache interface {
	// Get returns the cached overview payload for a user and period, or ""
	// when absent.
	Get(ctx context.Context, userID uuid.UUID, month time.Month, year int) (string, error)

	// Set stores the overview payload for a user and period with a TTL.
	Set(ctx context.Context, userID uuid.UUID, month time.Month, year int, payload string, ttl time.Duration) error

	// InvalidateUser drops every cached overview for a user. Called after any
	// write that changes billing inputs (clients, products, expenses).
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
