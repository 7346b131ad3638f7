package schema

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type IndyCredential struct {
	SchemaID                  string               `json:"schema_id"`
	CredDefID                 string               `json:"cred_def_id"`
	RevRegID                  string               `json:"rev_reg_id,omitempty"`
	Signature                 json.RawMessage      `json:"signature"`
	SignatureCorrectnessProof json.RawMessage      `json:"signature_correctness_proof"`
	Values                    IndyCredentialValues `json:"values"`
}

func (r *IndyCredential) Validate() error {
	switch {
	case r.SchemaID == "":
		return errors.Wrap(ErrMissingField, "credential schema_id")
	case r.CredDefID == "":
		return errors.Wrap(ErrMissingField, "credential cred_def_id")
	case len(r.Signature) == 0:
		return errors.Wrap(ErrMissingField, "credential signature")
	}

	return nil
}

type IndyCredentialValues map[string]*IndyAttributeValue

type IndyAttributeValue struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
}

// CredentialInfo is the wallet's view of a stored credential.
type CredentialInfo struct {
	Referent  string            `json:"referent"`
	Attrs     map[string]string `json:"attrs"`
	SchemaID  string            `json:"schema_id"`
	CredDefID string            `json:"cred_def_id"`
	RevRegID  string            `json:"rev_reg_id,omitempty"`
	CredRevID string            `json:"cred_rev_id,omitempty"`
}
