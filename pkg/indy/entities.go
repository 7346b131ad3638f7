package indy

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/schema"
)

// ObjectReader is the part of a ledger that serves immutable objects by id.
type ObjectReader interface {
	GetSchema(ctx context.Context, schemaID string) (*schema.Schema, error)
	GetCredDef(ctx context.Context, submitterDID, credDefID string) (*schema.CredentialDefinition, error)
}

// ResolveProverEntities fetches the schemas and credential definitions behind the selected credentials.
func ResolveProverEntities(ctx context.Context, l ObjectReader, submitterDID string, creds []*schema.CredentialInfo) (*schema.ProverEntities, error) {
	out := &schema.ProverEntities{
		Schemas:   map[string]*schema.Schema{},
		CredDefs:  map[string]*schema.CredentialDefinition{},
		RevStates: map[string]json.RawMessage{},
	}

	for _, info := range creds {
		if info.RevRegID != "" {
			return nil, errors.Wrapf(ErrRevocationUnsupported, "credential %s", info.Referent)
		}

		err := resolve(ctx, l, submitterDID, info.SchemaID, info.CredDefID, out.Schemas, out.CredDefs)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ResolveVerifierEntities fetches the ledger objects named by a proof's identifiers.
func ResolveVerifierEntities(ctx context.Context, l ObjectReader, submitterDID string, ids []*schema.Identifier) (*schema.VerifierEntities, error) {
	out := &schema.VerifierEntities{
		Schemas:    map[string]*schema.Schema{},
		CredDefs:   map[string]*schema.CredentialDefinition{},
		RevRegDefs: map[string]json.RawMessage{},
		RevRegs:    map[string]json.RawMessage{},
	}

	for _, id := range ids {
		if id.RevRegID != "" {
			return nil, errors.Wrapf(ErrRevocationUnsupported, "identifier %s", id.CredDefID)
		}

		err := resolve(ctx, l, submitterDID, id.SchemaID, id.CredDefID, out.Schemas, out.CredDefs)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func resolve(ctx context.Context, l ObjectReader, submitterDID, schemaID, credDefID string,
	schemas map[string]*schema.Schema, credDefs map[string]*schema.CredentialDefinition) error {

	if _, ok := schemas[schemaID]; !ok {
		s, err := l.GetSchema(ctx, schemaID)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve schema %s", schemaID)
		}
		schemas[schemaID] = s
	}

	if _, ok := credDefs[credDefID]; !ok {
		cd, err := l.GetCredDef(ctx, submitterDID, credDefID)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve credential definition %s", credDefID)
		}
		credDefs[credDefID] = cd
	}

	return nil
}
