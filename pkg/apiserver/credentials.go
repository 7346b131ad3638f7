package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoir/canis-exchange/pkg/schema"
)

type OfferRequest struct {
	TheirDID  string          `json:"their_did"`
	CredDefID string          `json:"cred_def_id"`
	Data      json.RawMessage `json:"data"`
}

type OfferResponse struct {
	ID string `json:"id"`
}

func (r *APIServer) listCredentials(c echo.Context) error {
	creds, err := r.creds.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	if creds == nil {
		creds = []*schema.CredentialInfo{}
	}

	return c.JSON(http.StatusOK, creds)
}

func (r *APIServer) sendOffer(c echo.Context) error {
	req := &OfferRequest{}
	if err := c.Bind(req); err != nil {
		return badRequest("invalid body")
	}

	if req.TheirDID == "" || req.CredDefID == "" {
		return badRequest("their_did and cred_def_id are required fields")
	}

	id, err := r.creds.SendOffer(c.Request().Context(), req.TheirDID, req.CredDefID, embedded(req.Data))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &OfferResponse{ID: id})
}

// embedded returns a JSON document sent either inline or as a JSON string.
func embedded(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}
