/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/indy/memory"
)

// LedgerConfig selects the anoncreds backend and the schemas the agent publishes and issues against
// at startup.
type LedgerConfig struct {
	Backend   string        `mapstructure:"backend"`
	CacheSize int           `mapstructure:"cacheSize"`
	CacheTTL  time.Duration `mapstructure:"cacheTTL"`
	Schemas   []*SchemaSeed `mapstructure:"schemas"`
}

type SchemaSeed struct {
	Name       string   `mapstructure:"name"`
	Version    string   `mapstructure:"version"`
	Attributes []string `mapstructure:"attributes"`
	Tag        string   `mapstructure:"tag"`
}

// Ledger is a configured backend: the ledger view (cached) and the wallet.
type Ledger struct {
	Ledger   indy.Ledger
	Wallet   indy.Wallet
	Verifier indy.Verifier
	// CredDefIDs are the definitions published from Schemas, in order.
	CredDefIDs []string
}

// Open builds the backend and publishes the configured schemas under issuerDID.
func (r *LedgerConfig) Open(ctx context.Context, issuerDID string, oracle indy.Oracle) (*Ledger, error) {
	switch r.Backend {
	case "memory":
	default:
		return nil, errors.New("no ledger configuration was provided")
	}

	ml := memory.NewLedger()
	wallet, err := memory.NewWallet(ml, oracle)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open wallet")
	}

	out := &Ledger{
		Ledger:   indy.NewLedgerCache(ml, r.CacheSize, r.CacheTTL),
		Wallet:   wallet,
		Verifier: memory.NewVerifier(),
	}

	for _, s := range r.Schemas {
		schemaID, err := ml.PublishSchema(ctx, issuerDID, s.Name, s.Version, s.Attributes)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to publish schema %s", s.Name)
		}

		tag := s.Tag
		if tag == "" {
			tag = "default"
		}

		credDefID, err := wallet.CreateCredentialDefinition(ctx, issuerDID, schemaID, tag)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create credential definition for %s", schemaID)
		}

		out.CredDefIDs = append(out.CredDefIDs, credDefID)
	}

	return out, nil
}
