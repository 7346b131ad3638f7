package schema

import "github.com/pkg/errors"

type IndyCredentialOffer struct {
	SchemaID            string                 `json:"schema_id"`
	CredDefID           string                 `json:"cred_def_id"`
	KeyCorrectnessProof map[string]interface{} `json:"key_correctness_proof"`
	Nonce               string                 `json:"nonce"`
	Data                map[string]string      `json:"data,omitempty"`
}

func (r *IndyCredentialOffer) Validate() error {
	switch {
	case r.SchemaID == "":
		return errors.Wrap(ErrMissingField, "credential offer schema_id")
	case r.CredDefID == "":
		return errors.Wrap(ErrMissingField, "credential offer cred_def_id")
	case r.Nonce == "":
		return errors.Wrap(ErrMissingField, "credential offer nonce")
	}

	return nil
}

type IndyCredentialRequest struct {
	ProverDID                 string                 `json:"prover_did"`
	CredDefID                 string                 `json:"cred_def_id"`
	BlindedMS                 map[string]interface{} `json:"blinded_ms"`
	BlindedMSCorrectnessProof map[string]interface{} `json:"blinded_ms_correctness_proof"`
	Nonce                     string                 `json:"nonce"`
}

func (r *IndyCredentialRequest) Validate() error {
	switch {
	case r.ProverDID == "":
		return errors.Wrap(ErrMissingField, "credential request prover_did")
	case r.CredDefID == "":
		return errors.Wrap(ErrMissingField, "credential request cred_def_id")
	case r.Nonce == "":
		return errors.Wrap(ErrMissingField, "credential request nonce")
	}

	return nil
}

// IndyCredentialRequestMetadata stays with the holder; it is never sent.
type IndyCredentialRequestMetadata struct {
	MasterSecretBlindingData map[string]interface{} `json:"master_secret_blinding_data"`
	Nonce                    string                 `json:"nonce"`
	MasterSecretName         string                 `json:"master_secret_name"`
}
