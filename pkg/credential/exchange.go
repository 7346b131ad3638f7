/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential runs the Indy credential issuance handshake for both the issuer and the holder.
//
//	issuer                       holder
//	SendOffer       -- offer -->
//	                <-- request  SendRequest
//	AcceptRequest   -- cred  -->
//	                             AcceptCredential
//
// Issuing to SelfDID runs the same four steps through the loopback messenger.
package credential

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/transport"
	"github.com/scoir/canis-exchange/pkg/ursa"
	"github.com/scoir/canis-exchange/pkg/util"
)

// SelfDID addresses the agent itself as the counterpart of an exchange.
const SelfDID = transport.SelfDID

var logger = logrus.WithField("module", "credential")

type Exchange struct {
	wallet  indy.Wallet
	ledger  indy.Ledger
	dir     datastore.Directory
	routes  *transport.Routes
	pending *pending.Correlator
}

// pendingRequest is what the holder keeps while waiting for the credential.
type pendingRequest struct {
	Request  *schema.IndyCredentialRequest         `json:"request"`
	Metadata *schema.IndyCredentialRequestMetadata `json:"metadata"`
}

func New(prov Provider) *Exchange {
	return &Exchange{
		wallet:  prov.Wallet(),
		ledger:  prov.Ledger(),
		dir:     prov.Directory(),
		routes:  prov.Routes(),
		pending: prov.Correlator(),
	}
}

func (r *Exchange) GetAll(ctx context.Context) ([]*schema.CredentialInfo, error) {
	creds, err := r.wallet.GetCredentials(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list wallet credentials")
	}

	return creds, nil
}

// SendOffer offers a credential against credDefID to theirDID. credentialData is a JSON object of
// attribute values; anything that does not parse is issued with no attributes and logged as degraded.
// The returned id names the pending offer so it can be revoked.
func (r *Exchange) SendOffer(ctx context.Context, theirDID, credDefID, credentialData string) (string, error) {
	route, err := r.routes.Route(ctx, theirDID)
	if err != nil {
		return "", err
	}

	data := parseData(credentialData)

	offer, err := r.wallet.CreateCredentialOffer(ctx, credDefID)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create offer for %s", credDefID)
	}
	offer.Data = data

	s, err := r.ledger.GetSchema(ctx, offer.SchemaID)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve schema %s", offer.SchemaID)
	}

	_, err = ursa.BuildValues(s.AttrNames, data)
	if err != nil {
		return "", errors.Wrap(err, "offer data can not be issued")
	}

	id, err := r.pending.Stage(ctx, pending.KindOffer, theirDID, offer.CredDefID, offer)
	if err != nil {
		return "", errors.Wrapf(err, "unable to stage offer for %s", theirDID)
	}

	util.Trace(logger, "credential offer", offer)

	err = route.Send(ctx, schema.CredentialOfferMsgType, offer)
	if err != nil {
		r.revoke(ctx, id)
		return "", err
	}

	return id, nil
}

// SendRequest answers an offer from theirDID with a credential request and keeps the request
// metadata until the credential arrives.
func (r *Exchange) SendRequest(ctx context.Context, theirDID string, env *schema.Envelope) error {
	route, err := r.routes.Route(ctx, theirDID)
	if err != nil {
		return err
	}

	offer := &schema.IndyCredentialOffer{}
	err = route.Open(ctx, env, offer)
	if err != nil {
		return err
	}
	util.Trace(logger, "received credential offer", offer)

	credDef, err := r.credDef(ctx, offer.CredDefID)
	if err != nil {
		return err
	}

	req, meta, err := r.wallet.CreateCredentialRequest(ctx, route.MyDID, offer, credDef)
	if err != nil {
		return errors.Wrap(err, "unable to create credential request")
	}

	id, err := r.pending.Stage(ctx, pending.KindRequest, theirDID, credDef.ID, &pendingRequest{Request: req, Metadata: meta})
	if err != nil {
		return errors.Wrapf(err, "unable to stage credential request for %s", theirDID)
	}

	util.Trace(logger, "credential request", req)

	err = route.Send(ctx, schema.CredentialRequestMsgType, req)
	if err != nil {
		r.revoke(ctx, id)
		return err
	}

	return nil
}

// AcceptRequest issues the credential for a request matching one of our pending offers to theirDID.
func (r *Exchange) AcceptRequest(ctx context.Context, theirDID string, env *schema.Envelope) error {
	route, err := r.routes.Route(ctx, theirDID)
	if err != nil {
		return err
	}

	req := &schema.IndyCredentialRequest{}
	err = route.Open(ctx, env, req)
	if err != nil {
		return err
	}
	util.Trace(logger, "received credential request", req)

	credDef, err := r.credDef(ctx, req.CredDefID)
	if err != nil {
		return err
	}

	err = r.pending.Resolve(ctx, pending.KindOffer, theirDID, credDef.ID, func(e *pending.Entry) error {
		offer := &schema.IndyCredentialOffer{}
		err := e.Decode(offer)
		if err != nil {
			return pending.Consumed(err)
		}

		s, err := r.ledger.GetSchema(ctx, offer.SchemaID)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve schema %s", offer.SchemaID)
		}

		values, err := ursa.BuildValues(s.AttrNames, offer.Data)
		if err != nil {
			return pending.Consumed(err)
		}

		cred, err := r.wallet.CreateCredential(ctx, offer, req, values.Values())
		if err != nil {
			return errors.Wrap(err, "unable to create credential")
		}

		util.Trace(logger, "credential", cred)

		return route.Send(ctx, schema.CredentialMsgType, cred)
	})
	if err != nil {
		return errors.Wrapf(err, "unable to issue %s to %s", credDef.ID, theirDID)
	}

	return nil
}

// AcceptCredential stores a credential from theirDID that answers one of our pending requests.
func (r *Exchange) AcceptCredential(ctx context.Context, theirDID string, env *schema.Envelope) error {
	route, err := r.routes.Route(ctx, theirDID)
	if err != nil {
		return err
	}

	cred := &schema.IndyCredential{}
	err = route.Open(ctx, env, cred)
	if err != nil {
		return err
	}
	util.Trace(logger, "received credential", cred)

	err = r.pending.Resolve(ctx, pending.KindRequest, theirDID, cred.CredDefID, func(e *pending.Entry) error {
		pr := &pendingRequest{}
		err := e.Decode(pr)
		if err != nil {
			return pending.Consumed(err)
		}

		credDef, err := r.credDef(ctx, cred.CredDefID)
		if err != nil {
			return err
		}

		id, err := r.wallet.StoreCredential(ctx, pr.Metadata, cred, credDef)
		if err != nil {
			return errors.Wrap(err, "unable to store credential")
		}

		logger.WithFields(logrus.Fields{"referent": id, "cred_def_id": cred.CredDefID, "issuer": theirDID}).Info("credential stored")

		all, err := r.wallet.GetCredentials(ctx)
		if err == nil {
			util.Trace(logger, "all credentials after storage", all)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "unable to accept credential %s from %s", cred.CredDefID, theirDID)
	}

	return nil
}

func (r *Exchange) credDef(ctx context.Context, credDefID string) (*schema.CredentialDefinition, error) {
	endpoint, err := r.dir.EndpointDID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load endpoint DID")
	}

	credDef, err := r.ledger.GetCredDef(ctx, endpoint, credDefID)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve credential definition %s", credDefID)
	}

	return credDef, nil
}

func (r *Exchange) revoke(ctx context.Context, id string) {
	err := r.pending.Revoke(ctx, id)
	if err != nil && !errors.Is(err, pending.ErrNotFound) {
		logger.WithError(err).WithField("id", id).Warn("unable to revoke pending entry after failed send")
	}
}

// parseData reads a flat JSON object of attribute values. Strings are taken as is and other scalars
// in their JSON text form. Input that is not an object, and nested values, are dropped with a warning.
func parseData(credentialData string) map[string]string {
	out := map[string]string{}

	raw := map[string]interface{}{}
	dec := json.NewDecoder(strings.NewReader(credentialData))
	dec.UseNumber()
	err := dec.Decode(&raw)
	if err == nil && raw == nil {
		err = errors.New("credential data is null")
	}
	if err == nil {
		if _, terr := dec.Token(); terr != io.EOF {
			err = errors.New("unexpected content after credential data")
		}
	}
	if err != nil {
		logger.WithError(err).WithField("degraded", true).Warn("credential data is not a JSON object, offering no attributes")
		return map[string]string{}
	}

	for name, v := range raw {
		switch val := v.(type) {
		case string:
			out[name] = val
		case json.Number:
			out[name] = val.String()
		case bool:
			if val {
				out[name] = "true"
			} else {
				out[name] = "false"
			}
		case nil:
		default:
			logger.WithFields(logrus.Fields{"attribute": name, "degraded": true}).Warn("dropping non scalar attribute value")
		}
	}

	return out
}
