// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sync"

	"carewatch/config"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const defaultLockStripes = 256

// UserLocker serializes state changes for a monitored user. Users hash onto a fixed set of
// mutexes, so unrelated users may occasionally share a stripe but one user never spans two.
type UserLocker struct {
	stripes []sync.Mutex
}

// NewUserLocker creates the lock table shared by ingest, wandering and emergency services.
func NewUserLocker(cfg *config.Config) *UserLocker {
	stripes := defaultLockStripes
	if cfg != nil && cfg.Safety != nil && cfg.Safety.LockStripes > 0 {
		stripes = cfg.Safety.LockStripes
	}

	return newUserLocker(stripes)
}

func newUserLocker(stripes int) *UserLocker {
	if stripes <= 0 {
		stripes = defaultLockStripes
	}

	return &UserLocker{stripes: make([]sync.Mutex, stripes)}
}

// Lock acquires the user's stripe and returns the release function.
func (l *UserLocker) Lock(userID uuid.UUID) (unlock func()) {
	mu := &l.stripes[l.stripe(userID)]
	mu.Lock()

	return mu.Unlock
}

func (l *UserLocker) stripe(userID uuid.UUID) uint64 {
	return xxhash.Sum64(userID[:]) % uint64(len(l.stripes))
}
