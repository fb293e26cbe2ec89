// Package locking provides the best-effort Redis lock around quote generation.
package locking

import (
	"context"
	"errors"
	"time"

	"tradequote/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

const releaseTimeout = 2 * time.Second

// Obtainer is the subset of *redislock.Client used by RedisLocker.
type Obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// RedisLocker never blocks a caller: a busy key or an unreachable Redis both
// report ok=false and the caller carries on without the lock.
type RedisLocker struct {
	locks Obtainer
	log   logrus.FieldLogger
}

var _ interfaces.IQuoteLocker = (*RedisLocker)(nil)

// NewRedisLocker accepts a nil client, in which case every TryLock fails fast.
func NewRedisLocker(client redislock.RedisClient, log logrus.FieldLogger) *RedisLocker {
	l := &RedisLocker{log: log}
	if client != nil {
		l.locks = redislock.New(client)
	}
	return l
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool) {
	noop := func() {}
	if l == nil || l.locks == nil {
		return noop, false
	}

	lock, err := l.locks.Obtain(ctx, key, ttl, nil)
	if err != nil {
		entry := l.log.WithField("key", key)
		if errors.Is(err, redislock.ErrNotObtained) {
			entry.Info("[lock][redis] lock busy")
		} else {
			entry.WithError(err).Warn("[lock][redis] obtain failed")
		}
		return noop, false
	}

	release := func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if err := lock.Release(rctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.log.WithError(err).WithField("key", key).Warn("[lock][redis] release failed")
		}
	}
	return release, true
}
