package pending_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/pending/mocks"
)

func TestCorrelator_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup failure", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("Find", ctx, pending.KindOffer, "s", "k").Return(nil, errors.New("db down"))

		c := pending.NewCorrelator(store)
		_, err := c.Stage(ctx, pending.KindOffer, "s", "k", map[string]string{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "db down")
		store.AssertExpectations(t)
	})

	t.Run("write failure", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("Find", ctx, pending.KindOffer, "s", "k").Return(nil, pending.ErrNoMatch)
		store.On("Write", ctx, mock.AnythingOfType("*pending.Entry")).Return("", errors.New("disk full"))

		c := pending.NewCorrelator(store)
		_, err := c.Stage(ctx, pending.KindOffer, "s", "k", map[string]string{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "disk full")
		store.AssertExpectations(t)
	})

	t.Run("delete failure after success", func(t *testing.T) {
		store := &mocks.Store{}
		e := &pending.Entry{ID: "1", Kind: pending.KindOffer, Scope: "s", Key: "k"}
		store.On("Find", ctx, pending.KindOffer, "s", "k").Return(e, nil)
		store.On("Delete", ctx, "1").Return(errors.New("db down"))

		c := pending.NewCorrelator(store)
		err := c.Resolve(ctx, pending.KindOffer, "s", "k", func(e *pending.Entry) error { return nil })
		require.Error(t, err)
		require.Contains(t, err.Error(), "db down")
		store.AssertExpectations(t)
	})
	t.Run("entry reaped while resolving", func(t *testing.T) {
		store := &mocks.Store{}
		e := &pending.Entry{ID: "1", Kind: pending.KindRequest, Scope: "s", Key: "k"}
		store.On("Find", ctx, pending.KindRequest, "s", "k").Return(e, nil)
		store.On("Delete", ctx, "1").Return(errors.Wrapf(pending.ErrNotFound, "id %s", "1"))

		c := pending.NewCorrelator(store)
		called := false
		err := c.Resolve(ctx, pending.KindRequest, "s", "k", func(e *pending.Entry) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.True(t, called)
		store.AssertExpectations(t)
	})

	t.Run("sweep listing failure", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("GetAll", ctx).Return(nil, errors.New("db down"))

		_, err := pending.NewCorrelator(store).Expire(ctx)
		require.Error(t, err)
		require.Contains(t, err.Error(), "db down")
	})
}
