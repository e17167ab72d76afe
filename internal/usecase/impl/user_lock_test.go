package impl

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserLocker_SerializesSameUser(t *testing.T) {
	t.Parallel()

	locker := newUserLocker(8)
	userID := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			unlock := locker.Lock(userID)
			defer unlock()

			current := counter
			counter = current + 1
		})
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestUserLocker_StableStripe(t *testing.T) {
	t.Parallel()

	locker := newUserLocker(16)
	userID := uuid.New()

	assert.Equal(t, locker.stripe(userID), locker.stripe(userID))
	assert.Less(t, locker.stripe(userID), uint64(16))
}
