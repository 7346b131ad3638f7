package datastore

import (
	"encoding/json"
	"time"

	"github.com/scoir/canis-exchange/pkg/schema"
)

// Pairwise is one of our DIDs paired with a counterpart's.
type Pairwise struct {
	TheirDID            string            `json:"their_did" bson:"_id"`
	MyDID               string            `json:"my_did" bson:"my_did"`
	TheirVerKey         string            `json:"their_verkey" bson:"their_verkey"`
	TheirEndpointDID    string            `json:"their_endpoint_did" bson:"their_endpoint_did"`
	TheirEndpointVerKey string            `json:"their_endpoint_verkey" bson:"their_endpoint_verkey"`
	Metadata            map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Proof is a verified presentation kept against the relationship it arrived on.
type Proof struct {
	ID          string                   `json:"id" bson:"_id"`
	TheirDID    string                   `json:"their_did" bson:"their_did"`
	Request     *schema.IndyProofRequest `json:"request" bson:"request"`
	Proof       *schema.IndyProof        `json:"proof" bson:"proof"`
	ValidatedAt time.Time                `json:"validated_at" bson:"validated_at"`
}

// Message is an inbound message staged in the Inbox. Body is the raw envelope for offers and a
// schema.PreparedProof for proof requests.
type Message struct {
	ID         string             `json:"id" bson:"_id"`
	Origin     string             `json:"origin" bson:"origin"`
	Type       schema.MessageType `json:"type" bson:"type"`
	Body       json.RawMessage    `json:"body" bson:"body"`
	ReceivedAt time.Time          `json:"received_at" bson:"received_at"`
}

// Decode unmarshals the body into out.
func (r *Message) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}
