package schema

import "encoding/json"

// Schema is the ledger's ordered list of attribute names.
type Schema struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attrNames"`
	SeqNo     int      `json:"seqNo,omitempty"`
}

type CredentialDefinition struct {
	ID       string          `json:"id"`
	SchemaID string          `json:"schemaId"`
	Type     string          `json:"type"`
	Tag      string          `json:"tag"`
	Value    json.RawMessage `json:"value"`
}

// ProverEntities is everything the ledger contributes to building a proof.
type ProverEntities struct {
	Schemas   map[string]*Schema               `json:"schemas"`
	CredDefs  map[string]*CredentialDefinition `json:"credential_defs"`
	RevStates map[string]json.RawMessage       `json:"rev_states"`
}

// VerifierEntities is everything the ledger contributes to verifying a proof.
type VerifierEntities struct {
	Schemas    map[string]*Schema               `json:"schemas"`
	CredDefs   map[string]*CredentialDefinition `json:"credential_defs"`
	RevRegDefs map[string]json.RawMessage       `json:"rev_reg_defs"`
	RevRegs    map[string]json.RawMessage       `json:"rev_regs"`
}
