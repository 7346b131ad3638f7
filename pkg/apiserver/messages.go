package apiserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/schema"
)

func (r *APIServer) listMessages(c echo.Context) error {
	msgs, err := r.inbox.List(c.Request().Context())
	if err != nil {
		return err
	}

	if msgs == nil {
		msgs = []*datastore.Message{}
	}

	return c.JSON(http.StatusOK, msgs)
}

func (r *APIServer) acceptMessage(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	msg, err := r.inbox.Get(ctx, id)
	if err != nil {
		return err
	}

	switch msg.Type {
	case schema.CredentialOfferMsgType:
		err = r.router.AcceptOffer(ctx, id)
	case schema.ProofRequestMsgType:
		err = r.router.AcceptProofRequest(ctx, id)
	default:
		return badRequest(fmt.Sprintf("%s messages can not be accepted", msg.Type))
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *APIServer) deleteMessage(c echo.Context) error {
	err := r.inbox.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *APIServer) listPending(c echo.Context) error {
	entries, err := r.pending.Pending(c.Request().Context())
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []*pending.Entry{}
	}

	return c.JSON(http.StatusOK, entries)
}

func (r *APIServer) revokePending(c echo.Context) error {
	err := r.pending.Revoke(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
