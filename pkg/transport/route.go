package transport

import (
	"context"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/schema"
)

// Route is everything needed to exchange messages with one counterpart.
type Route struct {
	MyDID       string
	TheirDID    string
	EndpointDID string
	messenger   Messenger
}

// Send authcrypts payload for the counterpart and delivers it to their endpoint.
func (r *Route) Send(ctx context.Context, typ schema.MessageType, payload schema.Payload) error {
	env, err := r.messenger.Authcrypt(ctx, r.MyDID, r.TheirDID, typ, payload)
	if err != nil {
		return errors.Wrapf(err, "unable to encrypt %s for %s", typ, r.TheirDID)
	}

	err = r.messenger.SendAnoncrypted(ctx, r.EndpointDID, env)
	if err != nil {
		return errors.Wrapf(err, "unable to send %s to %s", typ, r.TheirDID)
	}

	return nil
}

// Open decrypts an envelope received from the counterpart into out.
func (r *Route) Open(ctx context.Context, env *schema.Envelope, out schema.Payload) error {
	err := r.messenger.AuthDecrypt(ctx, r.MyDID, env, out)
	if err != nil {
		return errors.Wrapf(err, "unable to decrypt %s from %s", env.Type, r.TheirDID)
	}

	return nil
}

// Routes resolves counterparts to Routes. SelfDID resolves to the loopback with the agent's endpoint DID
// acting as its own DID; everything else goes through the pairwise directory.
type Routes struct {
	dir    datastore.Directory
	remote Messenger
	self   Messenger
}

func NewRoutes(dir datastore.Directory, remote, self Messenger) *Routes {
	return &Routes{
		dir:    dir,
		remote: remote,
		self:   self,
	}
}

func (r *Routes) Route(ctx context.Context, theirDID string) (*Route, error) {
	if theirDID == SelfDID {
		endpoint, err := r.dir.EndpointDID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "self issuance needs an endpoint DID")
		}

		return &Route{MyDID: endpoint, TheirDID: SelfDID, EndpointDID: SelfDID, messenger: r.self}, nil
	}

	pw, err := r.dir.GetPairwise(ctx, theirDID)
	if err != nil {
		return nil, errors.Wrapf(err, "no relationship with %s", theirDID)
	}

	return &Route{MyDID: pw.MyDID, TheirDID: theirDID, EndpointDID: pw.TheirEndpointDID, messenger: r.remote}, nil
}
