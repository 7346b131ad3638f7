package pending

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemStore is a Store indexed by correlation key.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	index   map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		entries: map[string]*Entry{},
		index:   map[string]string{},
	}
}

func (r *MemStore) Write(_ context.Context, e *Entry) (string, error) {
	if e == nil {
		return "", errors.New("pending entry is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ck := e.correlation()
	if _, ok := r.index[ck]; ok {
		return "", errors.Wrapf(ErrDuplicate, "%s %s/%s", e.Kind, e.Scope, e.Key)
	}

	cp := *e
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}

	if _, ok := r.entries[cp.ID]; ok {
		return "", errors.Wrapf(ErrDuplicate, "id %s", cp.ID)
	}

	r.entries[cp.ID] = &cp
	r.index[ck] = cp.ID

	return cp.ID, nil
}

func (r *MemStore) GetAll(_ context.Context) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemStore) Get(_ context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}

	cp := *e
	return &cp, nil
}

func (r *MemStore) Find(_ context.Context, kind Kind, scope, key string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.index[correlationKey(kind, scope, key)]
	if !ok {
		return nil, errors.Wrapf(ErrNoMatch, "%s %s/%s", kind, scope, key)
	}

	cp := *r.entries[id]
	return &cp, nil
}

func (r *MemStore) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}

	delete(r.index, e.correlation())
	delete(r.entries, id)

	return nil
}
