package config

import (
	"github.com/scoir/canis-exchange/pkg/config"
	"github.com/scoir/canis-exchange/pkg/framework"
)

type MockConfig struct {
	EndpointFunc      func(s string) (*framework.Endpoint, error)
	EndpointErr       error
	WithDataStoreFunc func() config.Config
	WithLedgerFunc    func() config.Config
	WithAMQPFunc      func() config.Config
	AMQPAddressFunc   func() string
	DataStoreFunc     func() (*framework.DatastoreConfig, error)
	DataStoreErr      error
	LedgerFunc        func() (*framework.LedgerConfig, error)
	LedgerErr         error
	AgentFunc         func() (*framework.AgentConfig, error)
	AgentErr          error
	Values            map[string]interface{}
}

func (m MockConfig) GetInt(s string) int {
	ret, _ := m.Values[s].(int)
	return ret
}

func (m MockConfig) GetString(s string) string {
	ret, _ := m.Values[s].(string)
	return ret
}

func (m MockConfig) WithAMQP(_ ...config.Option) config.Config {
	if m.WithAMQPFunc != nil {
		return m.WithAMQPFunc()
	}

	return m
}

func (m MockConfig) AMQPAddress() string {
	if m.AMQPAddressFunc != nil {
		return m.AMQPAddressFunc()
	}

	return ""
}

func (m MockConfig) AMQPConfig() (*framework.AMQPConfig, error) {
	panic("implement me AMQPConfig")
}

func (m MockConfig) WithDatastore(_ ...config.Option) config.Config {
	if m.WithDataStoreFunc != nil {
		return m.WithDataStoreFunc()
	}

	return m
}

func (m MockConfig) DataStore() (*framework.DatastoreConfig, error) {
	if m.DataStoreFunc != nil {
		return m.DataStoreFunc()
	}

	if m.DataStoreErr != nil {
		return nil, m.DataStoreErr
	}

	return nil, nil
}

func (m MockConfig) WithLedger(_ ...config.Option) config.Config {
	if m.WithLedgerFunc != nil {
		return m.WithLedgerFunc()
	}

	return m
}

func (m MockConfig) Ledger() (*framework.LedgerConfig, error) {
	if m.LedgerFunc != nil {
		return m.LedgerFunc()
	}

	if m.LedgerErr != nil {
		return nil, m.LedgerErr
	}

	return nil, nil
}

func (m MockConfig) Agent() (*framework.AgentConfig, error) {
	if m.AgentFunc != nil {
		return m.AgentFunc()
	}

	if m.AgentErr != nil {
		return nil, m.AgentErr
	}

	return nil, nil
}

func (m MockConfig) Endpoint(s string) (*framework.Endpoint, error) {
	if m.EndpointFunc != nil {
		return m.EndpointFunc(s)
	}

	if m.EndpointErr != nil {
		return nil, m.EndpointErr
	}

	return nil, nil
}
