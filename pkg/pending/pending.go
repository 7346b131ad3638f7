/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pending holds in-flight protocol artifacts until their counterpart message arrives.
package pending

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindOffer        Kind = "offer"
	KindRequest      Kind = "request"
	KindProofRequest Kind = "proof_request"
)

var (
	ErrNoMatch   = errors.New("no pending entry matches")
	ErrAmbiguous = errors.New("more than one pending entry matches")
	ErrDuplicate = errors.New("a pending entry already exists for this correlation key")
	ErrNotFound  = errors.New("pending entry not found")
)

// Entry is a staged protocol artifact. Scope and Key together form its correlation key within Kind.
type Entry struct {
	ID        string          `json:"id" bson:"_id"`
	Kind      Kind            `json:"kind" bson:"kind"`
	Scope     string          `json:"scope" bson:"scope"`
	Key       string          `json:"key" bson:"key"`
	Payload   json.RawMessage `json:"payload" bson:"payload"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time       `json:"expires_at" bson:"expires_at,omitempty"`
}

// Decode unmarshals the payload into out.
func (r *Entry) Decode(out interface{}) error {
	err := json.Unmarshal(r.Payload, out)
	if err != nil {
		return errors.Wrapf(err, "invalid payload for pending %s %s", r.Kind, r.ID)
	}

	return nil
}

func (r *Entry) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

func (r *Entry) correlation() string {
	return correlationKey(r.Kind, r.Scope, r.Key)
}

func correlationKey(kind Kind, scope, key string) string {
	return string(kind) + "\x1f" + scope + "\x1f" + key
}

//go:generate mockery -name=Store
type Store interface {
	// Write persists a new entry. A live entry with the same kind, scope and key yields ErrDuplicate.
	Write(ctx context.Context, e *Entry) (string, error)
	GetAll(ctx context.Context) ([]*Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	// Find returns the single entry for a correlation key, ErrNoMatch or ErrAmbiguous.
	Find(ctx context.Context, kind Kind, scope, key string) (*Entry, error)
	Delete(ctx context.Context, id string) error
}
