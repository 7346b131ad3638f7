package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scoir/canis-exchange/pkg/datastore"
)

type inbox struct {
	collection *mongo.Collection
}

func (r *inbox) Stage(ctx context.Context, m *datastore.Message) (string, error) {
	if m == nil {
		return "", errors.New("message is required")
	}

	cp := *m
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.ReceivedAt.IsZero() {
		cp.ReceivedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, &cp)
	if err != nil {
		return "", errors.Wrap(err, "unable to stage message")
	}

	return cp.ID, nil
}

func (r *inbox) Get(ctx context.Context, id string) (*datastore.Message, error) {
	out := &datastore.Message{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(datastore.ErrNotFound, "message %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load message")
	}

	return out, nil
}

func (r *inbox) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete message")
	}

	if res.DeletedCount == 0 {
		return errors.Wrapf(datastore.ErrNotFound, "message %s", id)
	}

	return nil
}

func (r *inbox) List(ctx context.Context) ([]*datastore.Message, error) {
	results, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "received_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find messages")
	}

	out := []*datastore.Message{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode messages")
	}

	return out, nil
}
