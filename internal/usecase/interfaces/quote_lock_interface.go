package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=quote_lock_interface.go -destination=mocks/mock_quote_lock_interface.go -package=mock_interfaces

// IQuoteLocker takes a best-effort lock. ok is false when the lock is busy or
// the backend is unavailable; release is always safe to call.
type IQuoteLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool)
}
