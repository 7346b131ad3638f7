/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/cucumber/godog"
	"github.com/labstack/echo/v4"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/agent"
	"github.com/scoir/canis-exchange/pkg/apiserver"
	"github.com/scoir/canis-exchange/pkg/crypto"
	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/datastore/memory"
	"github.com/scoir/canis-exchange/pkg/framework"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/schema"
)

// wire records what the agent hands to its outbound transport.
type wire struct {
	lock sync.Mutex
	sent map[string]int
}

func (r *wire) Deliver(_ context.Context, endpointDID string, _ []byte) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.sent[endpointDID]++
	return nil
}

type world struct {
	agent     *agent.Agent
	admin     *echo.Echo
	out       *wire
	last      *httptest.ResponseRecorder
	credDefID string
}

func seed(b byte) string {
	raw := make([]byte, crypto.KeySize)
	for i := range raw {
		raw[i] = b
	}
	return base58.Encode(raw)
}

func verkey(b byte) (string, error) {
	kp, err := crypto.KeyPairFromSeed(seed(b))
	if err != nil {
		return "", err
	}
	return kp.VerKey(), nil
}

func (r *world) anAgentWithCredentialDefinition(name string) error {
	theirs, err := verkey(3)
	if err != nil {
		return err
	}
	theirEndpoint, err := verkey(4)
	if err != nil {
		return err
	}

	cfg := &framework.AgentConfig{
		EndpointDID:  "did:issuer-endpoint",
		EndpointSeed: seed(1),
		Relationships: []*framework.Relationship{
			{
				TheirDID:            "did:holder",
				TheirVerKey:         theirs,
				TheirEndpointDID:    "did:holder-endpoint",
				TheirEndpointVerKey: theirEndpoint,
				MyDID:               "did:issuer",
				MySeed:              seed(2),
			},
		},
	}
	lc := &framework.LedgerConfig{
		Backend: "memory",
		Schemas: []*framework.SchemaSeed{
			{Name: name, Version: "1.0", Attributes: []string{"name", "age"}, Tag: "CD1"},
		},
	}

	r.out = &wire{sent: map[string]int{}}
	r.agent, err = agent.New(context.Background(), cfg, lc, memory.NewProvider(), r.out, nil)
	if err != nil {
		return errors.Wrap(err, "unable to create agent")
	}

	if len(r.agent.CredDefIDs()) != 1 {
		return errors.Errorf("expected one credential definition, got %d", len(r.agent.CredDefIDs()))
	}
	r.credDefID = r.agent.CredDefIDs()[0]
	r.admin = apiserver.New(r.agent).Handler()
	return nil
}

func (r *world) do(method, path string, body interface{}) error {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		d, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req = httptest.NewRequest(method, path, strings.NewReader(string(d)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	r.last = httptest.NewRecorder()
	r.admin.ServeHTTP(r.last, req)
	return nil
}

func (r *world) expect(code int) error {
	if r.last.Code != code {
		return errors.Errorf("expected status %d, got %d: %s", code, r.last.Code, r.last.Body.String())
	}
	return nil
}

func (r *world) theAdminOffersACredentialTo(data, theirDID string) error {
	err := r.do(http.MethodPost, "/credentials/offers", &apiserver.OfferRequest{
		TheirDID:  theirDID,
		CredDefID: r.credDefID,
		Data:      json.RawMessage(data),
	})
	if err != nil {
		return err
	}
	return r.expect(http.StatusCreated)
}

func (r *world) theAdminListsCredentials(count int) error {
	if err := r.do(http.MethodGet, "/credentials", nil); err != nil {
		return err
	}
	if err := r.expect(http.StatusOK); err != nil {
		return err
	}

	var creds []*schema.CredentialInfo
	if err := json.Unmarshal(r.last.Body.Bytes(), &creds); err != nil {
		return err
	}
	if len(creds) != count {
		return errors.Errorf("expected %d credentials, got %d", count, len(creds))
	}
	return nil
}

func (r *world) theAdminRequestsProofOfFrom(attr, theirDID string) error {
	template := `{"name":"CD1-Proof","version":"0.1","requested_attributes":{"attr1_referent":{"name":"` + attr +
		`"}},"requested_predicates":{}}`

	err := r.do(http.MethodPost, "/proofs/requests", &apiserver.ProofRequestRequest{
		TheirDID: theirDID,
		Template: json.RawMessage(template),
	})
	if err != nil {
		return err
	}
	return r.expect(http.StatusCreated)
}

func (r *world) aProofFromRevealsAs(theirDID, raw string) error {
	if err := r.do(http.MethodGet, "/proofs?their_did="+theirDID, nil); err != nil {
		return err
	}
	if err := r.expect(http.StatusOK); err != nil {
		return err
	}

	var proofs []*datastore.Proof
	if err := json.Unmarshal(r.last.Body.Bytes(), &proofs); err != nil {
		return err
	}
	if len(proofs) != 1 {
		return errors.Errorf("expected one proof, got %d", len(proofs))
	}

	attr, ok := proofs[0].Proof.RequestedProof.RevealedAttrs["attr1_referent"]
	if !ok || attr.Raw != raw {
		return errors.Errorf("expected revealed value %q", raw)
	}

	if err := r.do(http.MethodPost, "/proofs/"+proofs[0].ID+"/validate", nil); err != nil {
		return err
	}
	if err := r.expect(http.StatusOK); err != nil {
		return err
	}

	out := &apiserver.ValidateResponse{}
	if err := json.Unmarshal(r.last.Body.Bytes(), out); err != nil {
		return err
	}
	if !out.Valid {
		return errors.New("stored proof does not validate")
	}
	return nil
}

func (r *world) pendingRequests() ([]*pending.Entry, error) {
	if err := r.do(http.MethodGet, "/pending", nil); err != nil {
		return nil, err
	}
	if err := r.expect(http.StatusOK); err != nil {
		return nil, err
	}

	var entries []*pending.Entry
	err := json.Unmarshal(r.last.Body.Bytes(), &entries)
	return entries, err
}

func (r *world) requestsArePending(count int) error {
	entries, err := r.pendingRequests()
	if err != nil {
		return err
	}
	if len(entries) != count {
		return errors.Errorf("expected %d pending requests, got %d", count, len(entries))
	}
	return nil
}

func (r *world) theOfferWasSentTo(endpointDID string) error {
	r.out.lock.Lock()
	defer r.out.lock.Unlock()
	if r.out.sent[endpointDID] != 1 {
		return errors.Errorf("expected one delivery to %s, got %d", endpointDID, r.out.sent[endpointDID])
	}
	return nil
}

func (r *world) theAdminRevokesEveryPendingRequest() error {
	entries, err := r.pendingRequests()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := r.do(http.MethodDelete, "/pending/"+entry.ID, nil); err != nil {
			return err
		}
		if err := r.expect(http.StatusNoContent); err != nil {
			return err
		}
	}
	return nil
}

func FeatureContext(s *godog.ScenarioContext) {
	w := &world{}

	s.Step(`^an agent with a "([^"]*)" credential definition$`, w.anAgentWithCredentialDefinition)
	s.Step(`^the admin offers a credential with '([^']*)' to "([^"]*)"$`, w.theAdminOffersACredentialTo)
	s.Step(`^the admin lists (\d+) credentials?$`, w.theAdminListsCredentials)
	s.Step(`^the admin requests proof of "([^"]*)" from "([^"]*)"$`, w.theAdminRequestsProofOfFrom)
	s.Step(`^a valid proof from "([^"]*)" reveals "([^"]*)"$`, w.aProofFromRevealsAs)
	s.Step(`^(\d+) requests? (?:is|are) pending$`, w.requestsArePending)
	s.Step(`^the offer was sent to "([^"]*)"$`, w.theOfferWasSentTo)
	s.Step(`^the admin revokes every pending request$`, w.theAdminRevokesEveryPendingRequest)
}
