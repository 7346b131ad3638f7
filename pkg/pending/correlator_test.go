package pending

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offer struct {
	CredDefID string `json:"cred_def_id"`
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (r *clock) Now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

func (r *clock) Advance(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = r.now.Add(d)
}

func TestCorrelator_StageResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolve removes entry on success", func(t *testing.T) {
		c := NewCorrelator(NewMemStore())
		id, err := c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{CredDefID: "CD1"})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		var got offer
		err = c.Resolve(ctx, KindOffer, "did:their", "CD1", func(e *Entry) error {
			require.Equal(t, id, e.ID)
			return e.Decode(&got)
		})
		require.NoError(t, err)
		require.Equal(t, "CD1", got.CredDefID)

		err = c.Resolve(ctx, KindOffer, "did:their", "CD1", func(e *Entry) error { return nil })
		require.True(t, errors.Is(err, ErrNoMatch))
	})

	t.Run("duplicate stage rejected", func(t *testing.T) {
		c := NewCorrelator(NewMemStore())
		_, err := c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{})
		require.NoError(t, err)

		_, err = c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{})
		require.True(t, errors.Is(err, ErrDuplicate))

		_, err = c.Stage(ctx, KindOffer, "did:someone-else", "CD1", &offer{})
		require.NoError(t, err)
	})

	t.Run("failed callback keeps entry for retry", func(t *testing.T) {
		c := NewCorrelator(NewMemStore())
		_, err := c.Stage(ctx, KindRequest, "did:their", "CD1", &offer{})
		require.NoError(t, err)

		boom := errors.New("ledger down")
		err = c.Resolve(ctx, KindRequest, "did:their", "CD1", func(e *Entry) error { return boom })
		require.Equal(t, boom, err)

		err = c.Resolve(ctx, KindRequest, "did:their", "CD1", func(e *Entry) error { return nil })
		require.NoError(t, err)
	})

	t.Run("consumed failure removes entry", func(t *testing.T) {
		c := NewCorrelator(NewMemStore())
		_, err := c.Stage(ctx, KindProofRequest, "", "nonce", &offer{})
		require.NoError(t, err)

		bad := errors.New("invalid proof")
		err = c.Resolve(ctx, KindProofRequest, "", "nonce", func(e *Entry) error { return Consumed(bad) })
		require.True(t, errors.Is(err, bad))
		require.True(t, IsConsumed(err))
		require.Equal(t, "invalid proof", err.Error())

		pending, err := c.Pending(ctx)
		require.NoError(t, err)
		require.Empty(t, pending)
	})

	t.Run("undecodable payload", func(t *testing.T) {
		c := NewCorrelator(NewMemStore())
		_, err := c.Stage(ctx, KindOffer, "", "CD1", func() {})
		require.Error(t, err)
	})
}

func TestCorrelator_Expiry(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCorrelator(NewMemStore(), WithTTL(time.Minute), WithClock(clk.Now))

	_, err := c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{})
	require.NoError(t, err)
	_, err = c.Stage(ctx, KindOffer, "did:their", "CD2", &offer{})
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)

	t.Run("expired entry does not match", func(t *testing.T) {
		called := false
		err := c.Resolve(ctx, KindOffer, "did:their", "CD1", func(e *Entry) error {
			called = true
			return nil
		})
		require.True(t, errors.Is(err, ErrNoMatch))
		require.False(t, called)
	})

	t.Run("expired entry can be staged again", func(t *testing.T) {
		pending, err := c.Pending(ctx)
		require.NoError(t, err)
		require.Empty(t, pending)

		_, err = c.Stage(ctx, KindOffer, "did:their", "CD2", &offer{})
		require.NoError(t, err)
	})

	t.Run("sweep", func(t *testing.T) {
		_, err := c.Stage(ctx, KindOffer, "did:their", "CD3", &offer{})
		require.NoError(t, err)
		clk.Advance(2 * time.Minute)

		n, err := c.Expire(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
}

func TestCorrelator_ExpireWaitsForResolve(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c := NewCorrelator(NewMemStore(), WithTTL(time.Minute), WithClock(clk.Now))

	_, err := c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{CredDefID: "CD1"})
	require.NoError(t, err)

	swept := make(chan int, 1)
	err = c.Resolve(ctx, KindOffer, "did:their", "CD1", func(e *Entry) error {
		clk.Advance(2 * time.Minute)
		go func() {
			n, err := c.Expire(ctx)
			assert.NoError(t, err)
			swept <- n
		}()

		select {
		case n := <-swept:
			t.Errorf("sweep removed %d entries while the key was held", n)
		case <-time.After(50 * time.Millisecond):
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 0, <-swept)

	pending, err := c.Pending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestCorrelator_Start(t *testing.T) {
	store := NewMemStore()
	clk := &clock{now: time.Now()}
	c := NewCorrelator(store, WithTTL(time.Second), WithClock(clk.Now))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := c.Stage(ctx, KindOffer, "", "CD1", &offer{})
	require.NoError(t, err)
	clk.Advance(time.Hour)

	c.Start(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		all, _ := store.GetAll(ctx)
		return len(all) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestCorrelator_Revoke(t *testing.T) {
	ctx := context.Background()
	c := NewCorrelator(NewMemStore())

	id, err := c.Stage(ctx, KindProofRequest, "", "123", &offer{})
	require.NoError(t, err)

	require.NoError(t, c.Revoke(ctx, id))

	err = c.Resolve(ctx, KindProofRequest, "", "123", func(e *Entry) error { return nil })
	require.True(t, errors.Is(err, ErrNoMatch))

	require.True(t, errors.Is(c.Revoke(ctx, id), ErrNotFound))
}

func TestCorrelator_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewCorrelator(NewMemStore())

	const workers = 50
	var staged, resolved, duplicates int32
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := c.Stage(ctx, KindOffer, "did:their", "CD1", &offer{CredDefID: "CD1"})
			if err == nil {
				atomic.AddInt32(&staged, 1)
			} else if errors.Is(err, ErrDuplicate) {
				atomic.AddInt32(&duplicates, 1)
			}
		}()
		go func() {
			defer wg.Done()
			err := c.Resolve(ctx, KindOffer, "did:their", "CD1", func(e *Entry) error { return nil })
			if err == nil {
				atomic.AddInt32(&resolved, 1)
			}
		}()
	}
	wg.Wait()

	pending, err := c.Pending(ctx)
	require.NoError(t, err)

	require.Equal(t, int32(workers), staged+duplicates)
	require.Equal(t, staged, resolved+int32(len(pending)))
	require.LessOrEqual(t, len(pending), 1)
	require.Equal(t, 0, c.locks.size())
}
