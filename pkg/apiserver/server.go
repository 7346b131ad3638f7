/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package apiserver is the agent's admin HTTP API. It starts exchanges, lists what the agent holds and
// lets an operator decide on staged inbound messages.
package apiserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/schema"
)

var logger = logrus.WithField("module", "apiserver")

//go:generate mockery -name=CredentialExchange
type CredentialExchange interface {
	GetAll(ctx context.Context) ([]*schema.CredentialInfo, error)
	SendOffer(ctx context.Context, theirDID, credDefID, credentialData string) (string, error)
}

//go:generate mockery -name=ProofExchange
type ProofExchange interface {
	GetProofRequests(ctx context.Context) ([]*schema.IndyProofRequest, error)
	SendRequest(ctx context.Context, theirDID, template string) (string, error)
	Validate(ctx context.Context, proofID string) (bool, error)
}

//go:generate mockery -name=MessageRouter
type MessageRouter interface {
	AcceptOffer(ctx context.Context, messageID string) error
	AcceptProofRequest(ctx context.Context, messageID string) error
}

//go:generate mockery -name=PendingTracker
type PendingTracker interface {
	Pending(ctx context.Context) ([]*pending.Entry, error)
	Revoke(ctx context.Context, id string) error
}

type APIServer struct {
	creds   CredentialExchange
	proofs  ProofExchange
	router  MessageRouter
	pending PendingTracker
	dir     datastore.Directory
	inbox   datastore.Inbox
}

type provider interface {
	APICredentials() CredentialExchange
	APIProofs() ProofExchange
	APIMessages() MessageRouter
	APIPending() PendingTracker
	Directory() datastore.Directory
	Inbox() datastore.Inbox
}

func New(ctx provider) *APIServer {
	return &APIServer{
		creds:   ctx.APICredentials(),
		proofs:  ctx.APIProofs(),
		router:  ctx.APIMessages(),
		pending: ctx.APIPending(),
		dir:     ctx.Directory(),
		inbox:   ctx.Inbox(),
	}
}

// Handler returns an echo instance with every admin route registered.
func (r *APIServer) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	r.RegisterRoutes(e)
	return e
}

func (r *APIServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/credentials", r.listCredentials)
	e.POST("/credentials/offers", r.sendOffer)

	e.GET("/proofs/templates", r.listProofTemplates)
	e.POST("/proofs/requests", r.sendProofRequest)
	e.GET("/proofs", r.listProofs)
	e.GET("/proofs/:id", r.getProof)
	e.POST("/proofs/:id/validate", r.validateProof)

	e.GET("/messages", r.listMessages)
	e.POST("/messages/:id/accept", r.acceptMessage)
	e.DELETE("/messages/:id", r.deleteMessage)

	e.GET("/pending", r.listPending)
	e.DELETE("/pending/:id", r.revokePending)

	e.GET("/relationships", r.listRelationships)
}

func (r *APIServer) listRelationships(c echo.Context) error {
	pws, err := r.dir.ListPairwise(c.Request().Context())
	if err != nil {
		return err
	}

	if pws == nil {
		pws = []*datastore.Pairwise{}
	}

	return c.JSON(http.StatusOK, pws)
}
