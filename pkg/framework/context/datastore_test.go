package context

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/canis-exchange/pkg/datastore/memory"
	"github.com/scoir/canis-exchange/pkg/framework"
	mockConfig "github.com/scoir/canis-exchange/pkg/mock/config/viper"
)

func TestProvider_Datastore(t *testing.T) {
	t.Run("memory config is cached", func(t *testing.T) {
		calls := 0
		mc := mockConfig.MockConfig{
			DataStoreFunc: func() (*framework.DatastoreConfig, error) {
				calls++
				return &framework.DatastoreConfig{Database: "memory"}, nil
			},
		}
		p := NewProvider(mc)

		store, err := p.Datastore()
		require.NoError(t, err)
		_, ok := store.(*memory.Provider)
		require.True(t, ok)

		again, err := p.Datastore()
		require.NoError(t, err)
		require.Same(t, store, again)
		require.Equal(t, 1, calls)
	})

	t.Run("config error", func(t *testing.T) {
		mc := mockConfig.MockConfig{DataStoreErr: errors.New("boom")}
		p := NewProvider(mc)

		store, err := p.Datastore()
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
		require.Nil(t, store)
	})

	t.Run("no database config", func(t *testing.T) {
		mc := mockConfig.MockConfig{
			DataStoreFunc: func() (*framework.DatastoreConfig, error) {
				return &framework.DatastoreConfig{}, nil
			},
		}
		p := NewProvider(mc)

		store, err := p.Datastore()
		require.Error(t, err)
		require.Nil(t, store)
	})
}
