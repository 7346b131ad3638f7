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

const endpointKey = "endpoint"

type directory struct {
	pairwise *mongo.Collection
	proofs   *mongo.Collection
	agent    *mongo.Collection
}

func (r *directory) AddPairwise(ctx context.Context, p *datastore.Pairwise) error {
	if p == nil || p.TheirDID == "" || p.MyDID == "" {
		return errors.New("pairwise needs both DIDs")
	}

	_, err := r.pairwise.ReplaceOne(ctx, bson.M{"_id": p.TheirDID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(err, "unable to insert pairwise")
	}

	return nil
}

func (r *directory) GetPairwise(ctx context.Context, theirDID string) (*datastore.Pairwise, error) {
	out := &datastore.Pairwise{}
	err := r.pairwise.FindOne(ctx, bson.M{"_id": theirDID}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(datastore.ErrNotFound, "pairwise for %s", theirDID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load pairwise")
	}

	return out, nil
}

func (r *directory) ListPairwise(ctx context.Context) ([]*datastore.Pairwise, error) {
	results, err := r.pairwise.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find pairwise")
	}

	out := []*datastore.Pairwise{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode pairwise")
	}

	return out, nil
}

func (r *directory) SetEndpointDID(ctx context.Context, did string) error {
	_, err := r.agent.UpdateOne(ctx, bson.M{"_id": endpointKey}, bson.M{"$set": bson.M{"did": did}}, options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrap(err, "unable to set endpoint DID")
	}

	return nil
}

func (r *directory) EndpointDID(ctx context.Context) (string, error) {
	out := struct {
		DID string `bson:"did"`
	}{}

	err := r.agent.FindOne(ctx, bson.M{"_id": endpointKey}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.Wrap(datastore.ErrNotFound, "endpoint DID")
	}
	if err != nil {
		return "", errors.Wrap(err, "unable to find endpoint DID")
	}

	return out.DID, nil
}

func (r *directory) AddProof(ctx context.Context, p *datastore.Proof) (string, error) {
	cp := *p
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.ValidatedAt.IsZero() {
		cp.ValidatedAt = time.Now()
	}

	_, err := r.proofs.InsertOne(ctx, &cp)
	if err != nil {
		return "", errors.Wrap(err, "unable to insert proof")
	}

	return cp.ID, nil
}

func (r *directory) GetProof(ctx context.Context, id string) (*datastore.Proof, error) {
	out := &datastore.Proof{}
	err := r.proofs.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(datastore.ErrNotFound, "proof %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load proof")
	}

	return out, nil
}

func (r *directory) ListProofs(ctx context.Context, theirDID string) ([]*datastore.Proof, error) {
	bc := bson.M{}
	if theirDID != "" {
		bc["their_did"] = theirDID
	}

	results, err := r.proofs.Find(ctx, bc, options.Find().SetSort(bson.D{{Key: "validated_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find proofs")
	}

	out := []*datastore.Proof{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode proofs")
	}

	return out, nil
}
