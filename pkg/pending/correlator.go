package pending

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultTTL = 24 * time.Hour

var logger = logrus.WithField("module", "pending")

type Option func(opts *Correlator)

// WithTTL bounds how long an entry may stay unmatched. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(opts *Correlator) {
		opts.ttl = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(opts *Correlator) {
		opts.now = now
	}
}

// Correlator serializes every stage/resolve/revoke on the same correlation key, so a read-match-delete
// can never interleave with a colliding write.
type Correlator struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	locks *keyLock
}

func NewCorrelator(store Store, opts ...Option) *Correlator {
	c := &Correlator{
		store: store,
		ttl:   DefaultTTL,
		now:   time.Now,
		locks: newKeyLock(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Stage records payload under (kind, scope, key). A live entry for the same key is ErrDuplicate;
// an expired one is replaced.
func (r *Correlator) Stage(ctx context.Context, kind Kind, scope, key string, payload interface{}) (string, error) {
	unlock := r.locks.Lock(correlationKey(kind, scope, key))
	defer unlock()

	now := r.now()
	existing, err := r.store.Find(ctx, kind, scope, key)
	switch {
	case err == nil && existing.Expired(now):
		err = r.store.Delete(ctx, existing.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return "", errors.Wrap(err, "unable to drop expired pending entry")
		}
	case err == nil:
		return "", errors.Wrapf(ErrDuplicate, "%s %s/%s is already pending as %s", kind, scope, key, existing.ID)
	case !errors.Is(err, ErrNoMatch):
		return "", errors.Wrap(err, "unable to look up pending entries")
	}

	d, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrapf(err, "unable to marshal pending %s", kind)
	}

	e := &Entry{
		Kind:      kind,
		Scope:     scope,
		Key:       key,
		Payload:   d,
		CreatedAt: now,
	}
	if r.ttl > 0 {
		e.ExpiresAt = now.Add(r.ttl)
	}

	id, err := r.store.Write(ctx, e)
	if err != nil {
		return "", errors.Wrapf(err, "unable to stage pending %s", kind)
	}

	logger.WithFields(logrus.Fields{"kind": kind, "id": id, "scope": scope}).Debug("staged pending entry")

	return id, nil
}

// Resolve finds the entry for (kind, scope, key) and hands it to fn while holding the key's lock.
// The entry is deleted when fn succeeds or fails with a Consumed error, and kept for a retry otherwise.
func (r *Correlator) Resolve(ctx context.Context, kind Kind, scope, key string, fn func(e *Entry) error) error {
	unlock := r.locks.Lock(correlationKey(kind, scope, key))
	defer unlock()

	e, err := r.store.Find(ctx, kind, scope, key)
	if err != nil {
		return err
	}

	if e.Expired(r.now()) {
		err = r.store.Delete(ctx, e.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			logger.WithError(err).WithField("id", e.ID).Warn("unable to drop expired pending entry")
		}

		return errors.Wrapf(ErrNoMatch, "%s %s/%s expired at %s", kind, scope, key, e.ExpiresAt.Format(time.RFC3339))
	}

	ferr := fn(e)
	if ferr != nil && !IsConsumed(ferr) {
		return ferr
	}

	err = r.store.Delete(ctx, e.ID)
	if err != nil && ferr == nil && errors.Is(err, ErrNotFound) {
		// reaped by the store's own expiry after fn already did the work
		logger.WithFields(logrus.Fields{"kind": kind, "id": e.ID}).Debug("pending entry gone before resolve finished")
		return nil
	}
	if err != nil {
		if ferr != nil {
			logger.WithError(err).WithField("id", e.ID).Error("unable to delete consumed pending entry")
			return ferr
		}

		return errors.Wrapf(err, "unable to delete pending %s %s", kind, e.ID)
	}

	logger.WithFields(logrus.Fields{"kind": kind, "id": e.ID}).Debug("resolved pending entry")

	return ferr
}

// Revoke cancels a pending entry without waiting for its reply.
func (r *Correlator) Revoke(ctx context.Context, id string) error {
	e, err := r.store.Get(ctx, id)
	if err != nil {
		return err
	}

	unlock := r.locks.Lock(e.correlation())
	defer unlock()

	err = r.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"kind": e.Kind, "id": id}).Info("revoked pending entry")

	return nil
}

// Pending lists live entries.
func (r *Correlator) Pending(ctx context.Context) ([]*Entry, error) {
	all, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list pending entries")
	}

	now := r.now()
	out := make([]*Entry, 0, len(all))
	for _, e := range all {
		if !e.Expired(now) {
			out = append(out, e)
		}
	}

	return out, nil
}

// Expire removes expired entries, each under its correlation key lock so a Resolve in progress
// finishes first.
func (r *Correlator) Expire(ctx context.Context) (int, error) {
	all, err := r.store.GetAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "unable to list pending entries")
	}

	now := r.now()
	var n int
	for _, e := range all {
		if !e.Expired(now) {
			continue
		}

		ok, err := r.expire(ctx, e, now)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}

	return n, nil
}

func (r *Correlator) expire(ctx context.Context, e *Entry, now time.Time) (bool, error) {
	unlock := r.locks.Lock(e.correlation())
	defer unlock()

	cur, err := r.store.Get(ctx, e.ID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "unable to load pending %s %s", e.Kind, e.ID)
	}

	if !cur.Expired(now) {
		return false, nil
	}

	err = r.store.Delete(ctx, e.ID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "unable to expire pending %s %s", e.Kind, e.ID)
	}

	return true, nil
}

// Start sweeps expired entries every interval until ctx is done.
func (r *Correlator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := r.Expire(ctx)
				if err != nil {
					logger.WithError(err).Warn("pending sweep failed")
					continue
				}

				if n > 0 {
					logger.WithField("count", n).Info("expired unmatched pending entries")
				}
			}
		}
	}()
}

type consumedError struct {
	err error
}

func (r *consumedError) Error() string {
	return r.err.Error()
}

func (r *consumedError) Unwrap() error {
	return r.err
}

func (r *consumedError) Cause() error {
	return r.err
}

// Consumed marks a Resolve callback failure that must still remove the entry.
func Consumed(err error) error {
	if err == nil {
		return nil
	}

	return &consumedError{err: err}
}

func IsConsumed(err error) bool {
	var ce *consumedError
	return errors.As(err, &ce)
}
