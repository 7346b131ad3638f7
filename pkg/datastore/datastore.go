/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package datastore

import (
	"context"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/pending"
)

const (
	PairwiseC = "Pairwise"
	ProofC    = "Proof"
	MessageC  = "Message"
	PendingC  = "Pending"
	AgentC    = "Agent"
)

var ErrNotFound = errors.New("not found")

// Provider hands out the stores an agent needs.
type Provider interface {
	Directory() (Directory, error)
	Inbox() (Inbox, error)
	PendingStore() (pending.Store, error)

	// Close closes all stores created under this store provider
	Close() error
}

// Directory resolves relationships and records what was proven over them.
//go:generate mockery -name=Directory
type Directory interface {
	AddPairwise(ctx context.Context, p *Pairwise) error
	GetPairwise(ctx context.Context, theirDID string) (*Pairwise, error)
	ListPairwise(ctx context.Context) ([]*Pairwise, error)

	SetEndpointDID(ctx context.Context, did string) error
	EndpointDID(ctx context.Context) (string, error)

	AddProof(ctx context.Context, p *Proof) (string, error)
	GetProof(ctx context.Context, id string) (*Proof, error)
	ListProofs(ctx context.Context, theirDID string) ([]*Proof, error)
}

// Inbox holds inbound messages waiting for a human decision.
//go:generate mockery -name=Inbox
type Inbox interface {
	Stage(ctx context.Context, m *Message) (string, error)
	Get(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Message, error)
}
