package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scoir/canis-exchange/pkg/pending"
)

type pendingStore struct {
	collection *mongo.Collection
}

func (r *pendingStore) Write(ctx context.Context, e *pending.Entry) (string, error) {
	if e == nil {
		return "", errors.New("pending entry is required")
	}

	cp := *e
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}

	_, err := r.collection.InsertOne(ctx, &cp)
	if mongo.IsDuplicateKeyError(err) {
		return "", errors.Wrapf(pending.ErrDuplicate, "%s %s/%s", e.Kind, e.Scope, e.Key)
	}
	if err != nil {
		return "", errors.Wrap(err, "unable to insert pending entry")
	}

	return cp.ID, nil
}

func (r *pendingStore) GetAll(ctx context.Context) ([]*pending.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	results, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find pending entries")
	}

	out := []*pending.Entry{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode pending entries")
	}

	return out, nil
}

func (r *pendingStore) Get(ctx context.Context, id string) (*pending.Entry, error) {
	e := &pending.Entry{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(pending.ErrNotFound, "id %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load pending entry")
	}

	return e, nil
}

func (r *pendingStore) Find(ctx context.Context, kind pending.Kind, scope, key string) (*pending.Entry, error) {
	results, err := r.collection.Find(ctx, bson.M{"kind": kind, "scope": scope, "key": key}, options.Find().SetLimit(2))
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find pending entry")
	}

	matches := []*pending.Entry{}
	err = results.All(ctx, &matches)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode pending entry")
	}

	switch len(matches) {
	case 0:
		return nil, errors.Wrapf(pending.ErrNoMatch, "%s %s/%s", kind, scope, key)
	case 1:
		return matches[0], nil
	default:
		return nil, errors.Wrapf(pending.ErrAmbiguous, "%s %s/%s", kind, scope, key)
	}
}

func (r *pendingStore) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete pending entry")
	}

	if res.DeletedCount == 0 {
		return errors.Wrapf(pending.ErrNotFound, "id %s", id)
	}

	return nil
}
