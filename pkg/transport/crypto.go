package transport

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/crypto"
	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/schema"
)

var logger = logrus.WithField("module", "transport")

var ErrUnknownEndpoint = errors.New("no verkey known for endpoint")

// Crypto is the Messenger between distinct agents.
type Crypto struct {
	keys        *crypto.Keyring
	dir         datastore.Directory
	out         Outbound
	endpointDID string
}

func NewCrypto(keys *crypto.Keyring, dir datastore.Directory, out Outbound, endpointDID string) *Crypto {
	return &Crypto{
		keys:        keys,
		dir:         dir,
		out:         out,
		endpointDID: endpointDID,
	}
}

func (r *Crypto) Authcrypt(ctx context.Context, myDID, theirDID string, typ schema.MessageType, payload schema.Payload) (*schema.Envelope, error) {
	err := schema.CheckPayload(typ, payload)
	if err != nil {
		return nil, err
	}

	kp, err := r.keys.Get(myDID)
	if err != nil {
		return nil, err
	}

	pw, err := r.dir.GetPairwise(ctx, theirDID)
	if err != nil {
		return nil, err
	}

	theirKey, err := crypto.ParseVerKey(pw.TheirVerKey)
	if err != nil {
		return nil, errors.Wrapf(err, "pairwise %s", theirDID)
	}

	d, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to marshal %s", typ)
	}

	sealed, err := crypto.AuthCrypt(kp, theirKey, d)
	if err != nil {
		return nil, err
	}

	return &schema.Envelope{Origin: myDID, Type: typ, Message: sealed}, nil
}

func (r *Crypto) AuthDecrypt(ctx context.Context, myDID string, env *schema.Envelope, out schema.Payload) error {
	kp, err := r.keys.Get(myDID)
	if err != nil {
		return err
	}

	pw, err := r.dir.GetPairwise(ctx, env.Origin)
	if err != nil {
		return err
	}

	if pw.MyDID != myDID {
		return errors.Errorf("%s is paired with %s, not %s", env.Origin, pw.MyDID, myDID)
	}

	theirKey, err := crypto.ParseVerKey(pw.TheirVerKey)
	if err != nil {
		return errors.Wrapf(err, "pairwise %s", env.Origin)
	}

	d, err := crypto.AuthDecrypt(kp, theirKey, env.Message)
	if err != nil {
		return errors.Wrapf(err, "%s from %s", env.Type, env.Origin)
	}

	return schema.DecodePayload(env.Type, d, out)
}

func (r *Crypto) SendAnoncrypted(ctx context.Context, endpointDID string, env *schema.Envelope) error {
	verkey, err := r.endpointKey(ctx, endpointDID)
	if err != nil {
		return err
	}

	key, err := crypto.ParseVerKey(verkey)
	if err != nil {
		return err
	}

	d, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "unable to marshal envelope")
	}

	sealed, err := crypto.AnonCrypt(key, d, nil)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"type": env.Type, "endpoint": endpointDID}).Debug("sending message")

	return r.out.Deliver(ctx, endpointDID, sealed)
}

// Open removes the anoncrypt layer from a message delivered to this agent's endpoint.
func (r *Crypto) Open(_ context.Context, sealed []byte) (*schema.Envelope, error) {
	kp, err := r.keys.Get(r.endpointDID)
	if err != nil {
		return nil, err
	}

	d, err := crypto.AnonDecrypt(kp, sealed)
	if err != nil {
		return nil, err
	}

	env := &schema.Envelope{}
	err = json.Unmarshal(d, env)
	if err != nil {
		return nil, errors.Wrap(err, "malformed envelope")
	}

	return env, env.Validate()
}

func (r *Crypto) endpointKey(ctx context.Context, endpointDID string) (string, error) {
	pws, err := r.dir.ListPairwise(ctx)
	if err != nil {
		return "", err
	}

	for _, pw := range pws {
		if pw.TheirEndpointDID == endpointDID && pw.TheirEndpointVerKey != "" {
			return pw.TheirEndpointVerKey, nil
		}
	}

	return "", errors.Wrap(ErrUnknownEndpoint, endpointDID)
}
