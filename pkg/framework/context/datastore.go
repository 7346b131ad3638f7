/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context

import (
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/datastore"
)

func (r *Provider) Datastore() (datastore.Provider, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ds != nil {
		return r.ds, nil
	}

	dc, err := r.conf.DataStore()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load datastore config")
	}

	r.ds, err = dc.StorageProvider()
	if err != nil {
		return nil, err
	}

	return r.ds, nil
}
