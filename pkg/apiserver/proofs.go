package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/schema"
)

type ProofRequestRequest struct {
	TheirDID string          `json:"their_did"`
	Template json.RawMessage `json:"template"`
}

type ProofRequestResponse struct {
	Nonce string `json:"nonce"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (r *APIServer) listProofTemplates(c echo.Context) error {
	reqs, err := r.proofs.GetProofRequests(c.Request().Context())
	if err != nil {
		return err
	}

	if reqs == nil {
		reqs = []*schema.IndyProofRequest{}
	}

	return c.JSON(http.StatusOK, reqs)
}

func (r *APIServer) sendProofRequest(c echo.Context) error {
	req := &ProofRequestRequest{}
	if err := c.Bind(req); err != nil {
		return badRequest("invalid body")
	}

	if req.TheirDID == "" || len(req.Template) == 0 {
		return badRequest("their_did and template are required fields")
	}

	nonce, err := r.proofs.SendRequest(c.Request().Context(), req.TheirDID, embedded(req.Template))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &ProofRequestResponse{Nonce: nonce})
}

func (r *APIServer) listProofs(c echo.Context) error {
	proofs, err := r.dir.ListProofs(c.Request().Context(), c.QueryParam("their_did"))
	if err != nil {
		return err
	}

	if proofs == nil {
		proofs = []*datastore.Proof{}
	}

	return c.JSON(http.StatusOK, proofs)
}

func (r *APIServer) getProof(c echo.Context) error {
	proof, err := r.dir.GetProof(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, proof)
}

func (r *APIServer) validateProof(c echo.Context) error {
	ok, err := r.proofs.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &ValidateResponse{Valid: ok})
}
