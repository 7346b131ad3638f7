// Package memory keeps agent state in process. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/pending"
)

type Provider struct {
	dir     *Directory
	inbox   *Inbox
	pending *pending.MemStore
}

func NewProvider() *Provider {
	return &Provider{
		dir:     NewDirectory(),
		inbox:   NewInbox(),
		pending: pending.NewMemStore(),
	}
}

func (r *Provider) Directory() (datastore.Directory, error) {
	return r.dir, nil
}

func (r *Provider) Inbox() (datastore.Inbox, error) {
	return r.inbox, nil
}

func (r *Provider) PendingStore() (pending.Store, error) {
	return r.pending, nil
}

func (r *Provider) Close() error {
	return nil
}

type Directory struct {
	mu       sync.RWMutex
	pairwise map[string]*datastore.Pairwise
	proofs   []*datastore.Proof
	endpoint string
}

func NewDirectory() *Directory {
	return &Directory{pairwise: map[string]*datastore.Pairwise{}}
}

func (r *Directory) AddPairwise(_ context.Context, p *datastore.Pairwise) error {
	if p == nil || p.TheirDID == "" || p.MyDID == "" {
		return errors.New("pairwise needs both DIDs")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.pairwise[p.TheirDID] = &cp

	return nil
}

func (r *Directory) GetPairwise(_ context.Context, theirDID string) (*datastore.Pairwise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pairwise[theirDID]
	if !ok {
		return nil, errors.Wrapf(datastore.ErrNotFound, "pairwise for %s", theirDID)
	}

	cp := *p
	return &cp, nil
}

func (r *Directory) ListPairwise(_ context.Context) ([]*datastore.Pairwise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*datastore.Pairwise, 0, len(r.pairwise))
	for _, p := range r.pairwise {
		cp := *p
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TheirDID < out[j].TheirDID })

	return out, nil
}

func (r *Directory) SetEndpointDID(_ context.Context, did string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoint = did
	return nil
}

func (r *Directory) EndpointDID(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.endpoint == "" {
		return "", errors.Wrap(datastore.ErrNotFound, "endpoint DID")
	}

	return r.endpoint, nil
}

func (r *Directory) AddProof(_ context.Context, p *datastore.Proof) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.ValidatedAt.IsZero() {
		cp.ValidatedAt = time.Now()
	}

	r.proofs = append(r.proofs, &cp)

	return cp.ID, nil
}

func (r *Directory) GetProof(_ context.Context, id string) (*datastore.Proof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.proofs {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}

	return nil, errors.Wrapf(datastore.ErrNotFound, "proof %s", id)
}

func (r *Directory) ListProofs(_ context.Context, theirDID string) ([]*datastore.Proof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*datastore.Proof{}
	for _, p := range r.proofs {
		if theirDID == "" || p.TheirDID == theirDID {
			cp := *p
			out = append(out, &cp)
		}
	}

	return out, nil
}

type Inbox struct {
	mu       sync.RWMutex
	messages map[string]*datastore.Message
}

func NewInbox() *Inbox {
	return &Inbox{messages: map[string]*datastore.Message{}}
}

func (r *Inbox) Stage(_ context.Context, m *datastore.Message) (string, error) {
	if m == nil {
		return "", errors.New("message is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *m
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.ReceivedAt.IsZero() {
		cp.ReceivedAt = time.Now()
	}

	r.messages[cp.ID] = &cp

	return cp.ID, nil
}

func (r *Inbox) Get(_ context.Context, id string) (*datastore.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, errors.Wrapf(datastore.ErrNotFound, "message %s", id)
	}

	cp := *m
	return &cp, nil
}

func (r *Inbox) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return errors.Wrapf(datastore.ErrNotFound, "message %s", id)
	}

	delete(r.messages, id)

	return nil
}

func (r *Inbox) List(_ context.Context) ([]*datastore.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*datastore.Message, 0, len(r.messages))
	for _, m := range r.messages {
		cp := *m
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })

	return out, nil
}
