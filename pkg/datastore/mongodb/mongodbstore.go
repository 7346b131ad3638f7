/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/pending"
)

type Config struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// Provider represents a Mongo DB implementation of the datastore.Provider interface
type Provider struct {
	db *mongo.Database
	sync.Mutex
	indexed map[string]bool
}

// NewProvider instantiates Provider
func NewProvider(config *Config) (*Provider, error) {
	if config == nil {
		return nil, errors.New("config missing")
	}

	tM := reflect.TypeOf(bson.M{})
	reg := bson.NewRegistryBuilder().RegisterTypeMapEntry(bsontype.EmbeddedDocument, tM).Build()
	clientOpts := options.Client().SetRegistry(reg).ApplyURI(config.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to mongo")
	}

	err = mongoClient.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, errors.Wrap(err, "unable to reach mongo")
	}

	return &Provider{
		db:      mongoClient.Database(config.Database),
		indexed: map[string]bool{},
	}, nil
}

func (p *Provider) Directory() (datastore.Directory, error) {
	err := p.ensureIndexes(datastore.ProofC, mongo.IndexModel{
		Keys: bson.D{{Key: "their_did", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return &directory{
		pairwise: p.db.Collection(datastore.PairwiseC),
		proofs:   p.db.Collection(datastore.ProofC),
		agent:    p.db.Collection(datastore.AgentC),
	}, nil
}

func (p *Provider) Inbox() (datastore.Inbox, error) {
	return &inbox{collection: p.db.Collection(datastore.MessageC)}, nil
}

// PendingStore enforces one entry per correlation key with a unique index and lets mongo reap
// expired entries through a TTL index.
func (p *Provider) PendingStore() (pending.Store, error) {
	err := p.ensureIndexes(datastore.PendingC,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "scope", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("correlation"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("expiry"),
		},
	)
	if err != nil {
		return nil, err
	}

	return &pendingStore{collection: p.db.Collection(datastore.PendingC)}, nil
}

// Close disconnects the underlying client.
func (p *Provider) Close() error {
	return p.db.Client().Disconnect(context.Background())
}

func (p *Provider) ensureIndexes(name string, models ...mongo.IndexModel) error {
	p.Lock()
	defer p.Unlock()

	if p.indexed[name] {
		return nil
	}

	_, err := p.db.Collection(name).Indexes().CreateMany(context.Background(), models)
	if err != nil {
		return errors.Wrapf(err, "unable to create indexes on %s", name)
	}

	p.indexed[name] = true

	return nil
}
