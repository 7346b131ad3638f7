/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/datastore/memory"
	"github.com/scoir/canis-exchange/pkg/datastore/mongodb"
)

// DatastoreConfig selects where the directory, inbox and pending requests live.
// Database is either "mongo" or "memory".
type DatastoreConfig struct {
	Database string          `mapstructure:"database"`
	Mongo    *mongodb.Config `mapstructure:"mongo"`
}

func (r *DatastoreConfig) StorageProvider() (datastore.Provider, error) {
	switch r.Database {
	case "memory":
		return memory.NewProvider(), nil
	case "mongo":
		if r.Mongo == nil {
			return nil, errors.New("mongo datastore selected without mongo settings")
		}

		dp, err := mongodb.NewProvider(r.Mongo)
		if err != nil {
			return nil, errors.Wrap(err, "unable to create datastore based on config")
		}
		return dp, nil
	case "":
		return nil, errors.New("no datastore configuration was provided")
	default:
		return nil, errors.Errorf("unknown datastore %q", r.Database)
	}
}
