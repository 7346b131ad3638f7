package context

import (
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/framework"
)

const (
	apiEndpoint = "api"
)

func (r *Provider) AgentConfig() (*framework.AgentConfig, error) {
	return r.conf.Agent()
}

func (r *Provider) LedgerConfig() (*framework.LedgerConfig, error) {
	lc, err := r.conf.Ledger()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load ledger config")
	}

	return lc, nil
}

func (r *Provider) APIEndpoint() (*framework.Endpoint, error) {
	return r.conf.Endpoint(apiEndpoint)
}
