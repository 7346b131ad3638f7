/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package didcomm dispatches decrypted inbound envelopes to the exchange coordinators.
package didcomm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/transport"
)

var logger = logrus.WithField("module", "didcomm")

var ErrUnhandled = errors.New("no handler for message type")

//go:generate mockery -name=CredentialHandler
type CredentialHandler interface {
	SendRequest(ctx context.Context, theirDID string, env *schema.Envelope) error
	AcceptRequest(ctx context.Context, theirDID string, env *schema.Envelope) error
	AcceptCredential(ctx context.Context, theirDID string, env *schema.Envelope) error
}

//go:generate mockery -name=ProofHandler
type ProofHandler interface {
	PrepareRequest(ctx context.Context, env *schema.Envelope) (*schema.PreparedProof, error)
	AcceptRequest(ctx context.Context, messageID string) error
	ValidateAndStoreProof(ctx context.Context, env *schema.Envelope) (string, error)
}

type Provider interface {
	Credentials() CredentialHandler
	Proofs() ProofHandler
	Inbox() datastore.Inbox
}

type Option func(opts *Router)

// WithAutoAccept answers offers and proof requests from any counterpart without staging them.
func WithAutoAccept(auto bool) Option {
	return func(opts *Router) {
		opts.autoAccept = auto
	}
}

// Router implements transport.Handler. Offers and proof requests from other agents are staged in the
// inbox for a human decision unless auto accept is on; those from SelfDID are always answered.
type Router struct {
	creds      CredentialHandler
	proofs     ProofHandler
	inbox      datastore.Inbox
	autoAccept bool
	handlers   map[schema.MessageType]transport.HandlerFunc
}

func NewRouter(prov Provider, opts ...Option) *Router {
	r := &Router{
		creds:  prov.Credentials(),
		proofs: prov.Proofs(),
		inbox:  prov.Inbox(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.handlers = map[schema.MessageType]transport.HandlerFunc{
		schema.CredentialOfferMsgType:   r.offer,
		schema.CredentialRequestMsgType: r.request,
		schema.CredentialMsgType:        r.credential,
		schema.ProofRequestMsgType:      r.proofRequest,
		schema.ProofMsgType:             r.proof,
	}

	return r
}

func (r *Router) Handle(ctx context.Context, env *schema.Envelope) error {
	h, ok := r.handlers[env.Type]
	if !ok {
		return errors.Wrapf(ErrUnhandled, "%q from %s", env.Type, env.Origin)
	}

	logger.WithFields(logrus.Fields{"type": env.Type, "origin": env.Origin}).Debug("routing message")

	return h(ctx, env)
}

// AcceptOffer continues a credential offer staged in the inbox under messageID.
func (r *Router) AcceptOffer(ctx context.Context, messageID string) error {
	msg, err := r.inbox.Get(ctx, messageID)
	if err != nil {
		return errors.Wrapf(err, "unable to load staged message %s", messageID)
	}

	if msg.Type != schema.CredentialOfferMsgType {
		return errors.Errorf("staged message %s is a %s, not a credential offer", messageID, msg.Type)
	}

	env := &schema.Envelope{}
	err = msg.Decode(env)
	if err != nil {
		return errors.Wrapf(err, "staged message %s does not hold an envelope", messageID)
	}

	err = r.creds.SendRequest(ctx, msg.Origin, env)
	if err != nil {
		return err
	}

	return r.inbox.Delete(ctx, messageID)
}

// AcceptProofRequest sends the proof for a prepared proof request staged in the inbox.
func (r *Router) AcceptProofRequest(ctx context.Context, messageID string) error {
	return r.proofs.AcceptRequest(ctx, messageID)
}

func (r *Router) offer(ctx context.Context, env *schema.Envelope) error {
	if r.answers(env) {
		return r.creds.SendRequest(ctx, env.Origin, env)
	}

	_, err := r.stage(ctx, env, env)
	return err
}

func (r *Router) request(ctx context.Context, env *schema.Envelope) error {
	return r.creds.AcceptRequest(ctx, env.Origin, env)
}

func (r *Router) credential(ctx context.Context, env *schema.Envelope) error {
	return r.creds.AcceptCredential(ctx, env.Origin, env)
}

func (r *Router) proofRequest(ctx context.Context, env *schema.Envelope) error {
	prepared, err := r.proofs.PrepareRequest(ctx, env)
	if err != nil {
		return err
	}

	id, err := r.stage(ctx, env, prepared)
	if err != nil {
		return err
	}

	if r.answers(env) {
		return r.proofs.AcceptRequest(ctx, id)
	}

	return nil
}

func (r *Router) proof(ctx context.Context, env *schema.Envelope) error {
	_, err := r.proofs.ValidateAndStoreProof(ctx, env)
	return err
}

func (r *Router) answers(env *schema.Envelope) bool {
	return r.autoAccept || env.Origin == transport.SelfDID
}

func (r *Router) stage(ctx context.Context, env *schema.Envelope, body interface{}) (string, error) {
	d, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrapf(err, "unable to stage %s", env.Type)
	}

	id, err := r.inbox.Stage(ctx, &datastore.Message{
		Origin:     env.Origin,
		Type:       env.Type,
		Body:       d,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", errors.Wrapf(err, "unable to stage %s", env.Type)
	}

	logger.WithFields(logrus.Fields{"id": id, "type": env.Type, "origin": env.Origin}).Info("message staged for acceptance")

	return id, nil
}
