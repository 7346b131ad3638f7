/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type IndyProofRequest struct {
	Name                string                                `json:"name"`
	Version             string                                `json:"version"`
	Nonce               string                                `json:"nonce,omitempty"`
	RequestedAttributes map[string]*IndyProofRequestAttr      `json:"requested_attributes"`
	RequestedPredicates map[string]*IndyProofRequestPredicate `json:"requested_predicates"`
}

type IndyProofRequestAttr struct {
	Name         string         `json:"name"`
	Restrictions []*Restriction `json:"restrictions,omitempty"`
}

// IndyProofRequestPredicate is carried on the wire for compatibility; predicates are never proven.
type IndyProofRequestPredicate struct {
	Name         string         `json:"name"`
	PType        string         `json:"p_type"`
	PValue       int32          `json:"p_value"`
	Restrictions []*Restriction `json:"restrictions,omitempty"`
}

type Restriction struct {
	SchemaID        string `json:"schema_id,omitempty"`
	SchemaIssuerDID string `json:"schema_issuer_did,omitempty"`
	SchemaName      string `json:"schema_name,omitempty"`
	SchemaVersion   string `json:"schema_version,omitempty"`
	IssuerDID       string `json:"issuer_did,omitempty"`
	CredDefID       string `json:"cred_def_id,omitempty"`
}

// Matches checks the identifiers a restriction can be evaluated against without the ledger.
func (r *Restriction) Matches(schemaID, credDefID string) bool {
	if r.SchemaID != "" && r.SchemaID != schemaID {
		return false
	}

	if r.CredDefID != "" && r.CredDefID != credDefID {
		return false
	}

	return true
}

// SatisfiedBy reports whether any restriction (OR semantics) accepts the identifiers.
// No restrictions accepts everything.
func (r *IndyProofRequestAttr) SatisfiedBy(schemaID, credDefID string) bool {
	if len(r.Restrictions) == 0 {
		return true
	}

	for _, rst := range r.Restrictions {
		if rst.Matches(schemaID, credDefID) {
			return true
		}
	}

	return false
}

// ParseProofRequestTemplate strictly decodes a proof request authored without a nonce.
func ParseProofRequestTemplate(text string) (*IndyProofRequest, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	req := &IndyProofRequest{}
	err := dec.Decode(req)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "invalid proof request template: %v", err)
	}

	err = req.validateShape()
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (r *IndyProofRequest) Validate() error {
	if r.Nonce == "" {
		return errors.Wrap(ErrMissingField, "proof request nonce")
	}

	return r.validateShape()
}

func (r *IndyProofRequest) validateShape() error {
	switch {
	case r.Name == "":
		return errors.Wrap(ErrMissingField, "proof request name")
	case r.Version == "":
		return errors.Wrap(ErrMissingField, "proof request version")
	case len(r.RequestedAttributes) == 0:
		return errors.Wrap(ErrMissingField, "proof request requested_attributes")
	}

	for referent, attr := range r.RequestedAttributes {
		if attr == nil || attr.Name == "" {
			return errors.Wrapf(ErrMissingField, "name of requested attribute %s", referent)
		}
	}

	return nil
}

type CredentialsForProofRequest struct {
	Attrs      map[string][]*RequestedCredential `json:"attrs"`
	Predicates map[string][]*RequestedCredential `json:"predicates"`
}

type RequestedCredential struct {
	CredInfo *CredentialInfo `json:"cred_info"`
}

// PreparedProof is what a prover stages while waiting for a human to accept a proof request.
type PreparedProof struct {
	Origin               string                     `json:"origin"`
	Type                 MessageType                `json:"type"`
	ProofRequest         *IndyProofRequest          `json:"proofRequest"`
	CredsForProof        map[string]*CredentialInfo `json:"credsForProof"`
	RequestedCredentials *IndyRequestedCredentials  `json:"requestedCreds"`
}
