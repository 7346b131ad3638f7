package indy

import (
	"context"
	"time"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/schema"
)

var logger = logrus.WithField("module", "indy")

const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = time.Hour
)

// LedgerCache serves schemas and credential definitions from an LRU in front of another Ledger.
// Both are immutable once written, so only size and TTL bound staleness.
type LedgerCache struct {
	next     ObjectReader
	schemas  gcache.Cache
	credDefs gcache.Cache
	ttl      time.Duration
}

func NewLedgerCache(next ObjectReader, size int, ttl time.Duration) *LedgerCache {
	if size <= 0 {
		size = DefaultCacheSize
	}

	return &LedgerCache{
		next:     next,
		schemas:  gcache.New(size).LRU().Build(),
		credDefs: gcache.New(size).LRU().Build(),
		ttl:      ttl,
	}
}

func (r *LedgerCache) GetSchema(ctx context.Context, schemaID string) (*schema.Schema, error) {
	v, err := r.schemas.GetIFPresent(schemaID)
	if err == nil {
		return v.(*schema.Schema), nil
	}

	s, err := r.next.GetSchema(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	r.set(r.schemas, schemaID, s)

	return s, nil
}

func (r *LedgerCache) GetCredDef(ctx context.Context, submitterDID, credDefID string) (*schema.CredentialDefinition, error) {
	v, err := r.credDefs.GetIFPresent(credDefID)
	if err == nil {
		return v.(*schema.CredentialDefinition), nil
	}

	cd, err := r.next.GetCredDef(ctx, submitterDID, credDefID)
	if err != nil {
		return nil, err
	}

	r.set(r.credDefs, credDefID, cd)

	return cd, nil
}

func (r *LedgerCache) ProverEntities(ctx context.Context, submitterDID string, creds []*schema.CredentialInfo) (*schema.ProverEntities, error) {
	return ResolveProverEntities(ctx, r, submitterDID, creds)
}

func (r *LedgerCache) VerifierEntities(ctx context.Context, submitterDID string, ids []*schema.Identifier) (*schema.VerifierEntities, error) {
	return ResolveVerifierEntities(ctx, r, submitterDID, ids)
}

func (r *LedgerCache) Purge() {
	r.schemas.Purge()
	r.credDefs.Purge()
}

func (r *LedgerCache) set(c gcache.Cache, key string, v interface{}) {
	var err error
	if r.ttl > 0 {
		err = c.SetWithExpire(key, v, r.ttl)
	} else {
		err = c.Set(key, v)
	}

	if err != nil {
		logger.WithError(errors.WithStack(err)).WithField("key", key).Warn("unable to cache ledger object")
	}
}
