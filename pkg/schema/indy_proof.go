package schema

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type IndyProof struct {
	Proof          json.RawMessage     `json:"proof"`
	RequestedProof *IndyRequestedProof `json:"requested_proof"`
	Identifiers    []*Identifier       `json:"identifiers"`
	Nonce          string              `json:"nonce,omitempty"`
}

func (r *IndyProof) Validate() error {
	switch {
	case len(r.Proof) == 0:
		return errors.Wrap(ErrMissingField, "proof body")
	case r.RequestedProof == nil:
		return errors.Wrap(ErrMissingField, "proof requested_proof")
	case len(r.Identifiers) == 0:
		return errors.Wrap(ErrMissingField, "proof identifiers")
	case r.Nonce == "":
		return errors.Wrap(ErrMissingField, "proof nonce")
	}

	return nil
}

// WithoutNonce returns a shallow copy with the correlation nonce stripped, the shape verification expects.
func (r *IndyProof) WithoutNonce() *IndyProof {
	out := *r
	out.Nonce = ""
	return &out
}

type IndyRequestedProof struct {
	RevealedAttrs     map[string]*RevealedAttributeInfo `json:"revealed_attrs"`
	SelfAttestedAttrs map[string]string                 `json:"self_attested_attrs"`
	UnrevealedAttrs   map[string]*SubProofReferent      `json:"unrevealed_attrs"`
	Predicates        map[string]*SubProofReferent      `json:"predicates"`
}

type Identifier struct {
	SchemaID  string `json:"schema_id"`
	CredDefID string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type SubProofReferent struct {
	SubProofIndex int32 `json:"sub_proof_index"`
}

type RevealedAttributeInfo struct {
	SubProofIndex int32  `json:"sub_proof_index"`
	Raw           string `json:"raw"`
	Encoded       string `json:"encoded"`
}

type IndyRequestedAttribute struct {
	CredID    string `json:"cred_id"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Revealed  bool   `json:"revealed"`
}

type ProvingCredentialKey struct {
	CredID    string `json:"cred_id"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type IndyRequestedCredentials struct {
	SelfAttestedAttrs   map[string]string                  `json:"self_attested_attributes"`
	RequestedAttributes map[string]*IndyRequestedAttribute `json:"requested_attributes"`
	RequestedPredicates map[string]*ProvingCredentialKey   `json:"requested_predicates"`
}
