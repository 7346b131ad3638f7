package context

import (
	"sync"

	"github.com/scoir/canis-exchange/pkg/amqp"
	"github.com/scoir/canis-exchange/pkg/config"
	"github.com/scoir/canis-exchange/pkg/datastore"
)

// Provider lazily builds the agent's collaborators from configuration.
type Provider struct {
	conf config.Config
	lock sync.Mutex
	ds   datastore.Provider
	pub  amqp.Publisher
}

func NewProvider(conf config.Config) *Provider {
	return &Provider{conf: conf}
}
