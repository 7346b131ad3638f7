/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentproof runs the Indy proof handshake. The verifier sends a nonce bearing proof
// request and matches the returned proof to it by nonce. The prover answers in two phases:
// PrepareRequest picks credentials, AcceptRequest builds and sends the proof once a human agrees.
//
// Only revealed attributes are proven. Predicates, self attested attributes and choosing between
// several matching credentials are not supported; the first candidate for each referent is used.
package presentproof

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/transport"
	"github.com/scoir/canis-exchange/pkg/util"
)

const templateVersion = "0.1"

var logger = logrus.WithField("module", "presentproof")

var (
	ErrNoMatchingRequest  = errors.Wrap(pending.ErrNoMatch, "no matching proof request")
	ErrVerificationFailed = errors.New("proof verification failed")
	ErrNoCandidate        = errors.New("no credential satisfies requested attribute")
	ErrUnsupported        = errors.New("proof request asks for unsupported proofs")
	ErrWrongProver        = errors.New("proof did not come from the requested prover")
)

type Exchange struct {
	wallet   indy.Wallet
	ledger   indy.Ledger
	verifier indy.Verifier
	oracle   indy.Oracle
	dir      datastore.Directory
	inbox    datastore.Inbox
	routes   *transport.Routes
	pending  *pending.Correlator
}

// pendingProofRequest is what the verifier keeps, keyed by nonce, while waiting for the proof.
type pendingProofRequest struct {
	TheirDID string                   `json:"their_did"`
	Request  *schema.IndyProofRequest `json:"request"`
}

func New(prov Provider) *Exchange {
	return &Exchange{
		wallet:   prov.Wallet(),
		ledger:   prov.Ledger(),
		verifier: prov.Verifier(),
		oracle:   prov.Oracle(),
		dir:      prov.Directory(),
		inbox:    prov.Inbox(),
		routes:   prov.Routes(),
		pending:  prov.Correlator(),
	}
}

// GetProofRequests builds one ready made request per credential definition in the wallet, asking
// for every schema attribute restricted to that definition.
func (r *Exchange) GetProofRequests(ctx context.Context) ([]*schema.IndyProofRequest, error) {
	defs, err := r.wallet.CredentialDefinitions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list credential definitions")
	}

	out := make([]*schema.IndyProofRequest, 0, len(defs))
	for _, cd := range defs {
		s, err := r.ledger.GetSchema(ctx, cd.SchemaID)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to resolve schema for %s", cd.ID)
		}

		req := &schema.IndyProofRequest{
			Name:                fmt.Sprintf("%s-Proof", cd.Tag),
			Version:             templateVersion,
			RequestedAttributes: map[string]*schema.IndyProofRequestAttr{},
			RequestedPredicates: map[string]*schema.IndyProofRequestPredicate{},
		}

		for i, name := range s.AttrNames {
			req.RequestedAttributes[fmt.Sprintf("attr%d_referent", i+1)] = &schema.IndyProofRequestAttr{
				Name:         name,
				Restrictions: []*schema.Restriction{{CredDefID: cd.ID}},
			}
		}

		out = append(out, req)
	}

	return out, nil
}

// SendRequest sends the proof request template to theirDID with a fresh nonce and returns the nonce.
func (r *Exchange) SendRequest(ctx context.Context, theirDID, template string) (string, error) {
	req, err := schema.ParseProofRequestTemplate(template)
	if err != nil {
		return "", err
	}

	route, err := r.routes.Route(ctx, theirDID)
	if err != nil {
		return "", err
	}

	req.Nonce, err = r.oracle.NewNonce()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate proof request nonce")
	}

	id, err := r.pending.Stage(ctx, pending.KindProofRequest, "", req.Nonce, &pendingProofRequest{TheirDID: theirDID, Request: req})
	if err != nil {
		return "", errors.Wrap(err, "unable to stage proof request")
	}

	util.Trace(logger, "proof request", req)

	err = route.Send(ctx, schema.ProofRequestMsgType, req)
	if err != nil {
		rerr := r.pending.Revoke(ctx, id)
		if rerr != nil && !errors.Is(rerr, pending.ErrNotFound) {
			logger.WithError(rerr).WithField("id", id).Warn("unable to revoke proof request after failed send")
		}
		return "", err
	}

	return req.Nonce, nil
}

// PrepareRequest decrypts an inbound proof request and selects, for every requested attribute, the
// first credential the wallet offers for it.
func (r *Exchange) PrepareRequest(ctx context.Context, env *schema.Envelope) (*schema.PreparedProof, error) {
	route, err := r.routes.Route(ctx, env.Origin)
	if err != nil {
		return nil, err
	}

	req := &schema.IndyProofRequest{}
	err = route.Open(ctx, env, req)
	if err != nil {
		return nil, err
	}
	util.Trace(logger, "received proof request", req)

	if len(req.RequestedPredicates) > 0 {
		return nil, errors.Wrapf(ErrUnsupported, "%d predicates requested", len(req.RequestedPredicates))
	}

	found, err := r.wallet.GetCredentialsForProofRequest(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "unable to search wallet for proof request")
	}

	prepared := &schema.PreparedProof{
		Origin:        env.Origin,
		Type:          env.Type,
		ProofRequest:  req,
		CredsForProof: map[string]*schema.CredentialInfo{},
		RequestedCredentials: &schema.IndyRequestedCredentials{
			SelfAttestedAttrs:   map[string]string{},
			RequestedAttributes: map[string]*schema.IndyRequestedAttribute{},
			RequestedPredicates: map[string]*schema.ProvingCredentialKey{},
		},
	}

	for referent, attr := range req.RequestedAttributes {
		candidates := found.Attrs[referent]
		if len(candidates) == 0 || candidates[0].CredInfo == nil {
			return nil, errors.Wrapf(ErrNoCandidate, "%s (%s)", referent, attr.Name)
		}

		info := candidates[0].CredInfo
		prepared.CredsForProof[referent] = info
		prepared.RequestedCredentials.RequestedAttributes[referent] = &schema.IndyRequestedAttribute{
			CredID:   info.Referent,
			Revealed: true,
		}
	}

	util.Trace(logger, "prepared proof", prepared)

	return prepared, nil
}

// AcceptRequest builds and sends the proof for a prepared request staged in the inbox under
// messageID, then removes the staged message.
func (r *Exchange) AcceptRequest(ctx context.Context, messageID string) error {
	msg, err := r.inbox.Get(ctx, messageID)
	if err != nil {
		return errors.Wrapf(err, "unable to load staged message %s", messageID)
	}

	if msg.Type != schema.ProofRequestMsgType {
		return errors.Errorf("staged message %s is a %s, not a proof request", messageID, msg.Type)
	}

	prepared := &schema.PreparedProof{}
	err = msg.Decode(prepared)
	if err != nil {
		return errors.Wrapf(err, "staged message %s is not a prepared proof", messageID)
	}

	if prepared.ProofRequest == nil || prepared.RequestedCredentials == nil {
		return errors.Errorf("staged message %s is not a prepared proof", messageID)
	}

	route, err := r.routes.Route(ctx, prepared.Origin)
	if err != nil {
		return err
	}

	endpoint, err := r.dir.EndpointDID(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to load endpoint DID")
	}

	pents, err := r.ledger.ProverEntities(ctx, endpoint, credentialsOf(prepared))
	if err != nil {
		return errors.Wrap(err, "unable to resolve ledger entities for proof")
	}

	proof, err := r.wallet.CreateProof(ctx, prepared.ProofRequest, prepared.RequestedCredentials, pents)
	if err != nil {
		return errors.Wrap(err, "unable to create proof")
	}
	proof.Nonce = prepared.ProofRequest.Nonce

	util.Trace(logger, "proof", proof)

	err = route.Send(ctx, schema.ProofMsgType, proof)
	if err != nil {
		return err
	}

	err = r.inbox.Delete(ctx, messageID)
	if err != nil {
		return errors.Wrapf(err, "proof sent but unable to remove staged message %s", messageID)
	}

	return nil
}

// ValidateAndStoreProof matches an inbound proof to its request by nonce, verifies it and stores it
// against the relationship. An unknown nonce is ErrNoMatchingRequest. A proof that fails
// verification is ErrVerificationFailed and its request is discarded.
func (r *Exchange) ValidateAndStoreProof(ctx context.Context, env *schema.Envelope) (string, error) {
	route, err := r.routes.Route(ctx, env.Origin)
	if err != nil {
		return "", err
	}

	proof := &schema.IndyProof{}
	err = route.Open(ctx, env, proof)
	if err != nil {
		return "", err
	}
	util.Trace(logger, "received proof", proof)

	var id string
	err = r.pending.Resolve(ctx, pending.KindProofRequest, "", proof.Nonce, func(e *pending.Entry) error {
		ppr := &pendingProofRequest{}
		err := e.Decode(ppr)
		if err != nil {
			return pending.Consumed(err)
		}

		if ppr.TheirDID != env.Origin {
			return errors.Wrapf(ErrWrongProver, "requested from %s, received from %s", ppr.TheirDID, env.Origin)
		}

		ok, err := r.verify(ctx, ppr.Request, proof)
		if err != nil {
			return err
		}

		if !ok {
			return pending.Consumed(errors.Wrapf(ErrVerificationFailed, "proof from %s", env.Origin))
		}

		id, err = r.dir.AddProof(ctx, &datastore.Proof{
			TheirDID:    env.Origin,
			Request:     ppr.Request,
			Proof:       proof,
			ValidatedAt: time.Now().UTC(),
		})
		if err != nil {
			return errors.Wrap(err, "unable to store verified proof")
		}

		return nil
	})
	if errors.Is(err, pending.ErrNoMatch) {
		logger.WithField("origin", env.Origin).Warn("discarding proof with no matching request")
		return "", errors.Wrapf(ErrNoMatchingRequest, "from %s", env.Origin)
	}
	if err != nil {
		return "", err
	}

	logger.WithFields(logrus.Fields{"id": id, "origin": env.Origin}).Info("proof verified and stored")

	return id, nil
}

// Validate verifies a stored proof again against the current ledger state.
func (r *Exchange) Validate(ctx context.Context, proofID string) (bool, error) {
	p, err := r.dir.GetProof(ctx, proofID)
	if err != nil {
		return false, errors.Wrapf(err, "unable to load proof %s", proofID)
	}

	return r.verify(ctx, p.Request, p.Proof)
}

func (r *Exchange) verify(ctx context.Context, req *schema.IndyProofRequest, proof *schema.IndyProof) (bool, error) {
	endpoint, err := r.dir.EndpointDID(ctx)
	if err != nil {
		return false, errors.Wrap(err, "unable to load endpoint DID")
	}

	vents, err := r.ledger.VerifierEntities(ctx, endpoint, proof.Identifiers)
	if err != nil {
		return false, errors.Wrap(err, "unable to resolve ledger entities for verification")
	}

	ok, err := r.verifier.VerifyProof(ctx, req, proof.WithoutNonce(), vents)
	if err != nil {
		return false, errors.Wrap(err, "unable to verify proof")
	}

	return ok, nil
}

// credentialsOf lists the distinct credentials a prepared proof draws on, in a stable order.
func credentialsOf(prepared *schema.PreparedProof) []*schema.CredentialInfo {
	seen := map[string]*schema.CredentialInfo{}
	for _, info := range prepared.CredsForProof {
		seen[info.Referent] = info
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*schema.CredentialInfo, len(ids))
	for i, id := range ids {
		out[i] = seen[id]
	}

	return out
}
