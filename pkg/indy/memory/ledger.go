/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package memory is a development anoncreds backend. It signs each attribute with ed25519 and reveals
// attributes in the clear; it is not a CL signature scheme and offers no zero knowledge properties.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/schema"
)

const SignatureType = "ED25519-DEV"

// Ledger keeps schemas and credential definitions in process.
type Ledger struct {
	mu       sync.RWMutex
	schemas  map[string]*schema.Schema
	credDefs map[string]*schema.CredentialDefinition
	seqNo    int
}

func NewLedger() *Ledger {
	return &Ledger{
		schemas:  map[string]*schema.Schema{},
		credDefs: map[string]*schema.CredentialDefinition{},
	}
}

// PublishSchema writes a schema and returns its id, issuerDID:2:name:version.
func (r *Ledger) PublishSchema(_ context.Context, issuerDID, name, version string, attrNames []string) (string, error) {
	if issuerDID == "" || name == "" || version == "" || len(attrNames) == 0 {
		return "", errors.New("schema needs an issuer, name, version and at least one attribute")
	}

	id := fmt.Sprintf("%s:2:%s:%s", issuerDID, name, version)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schemas[id]; ok {
		return "", errors.Errorf("schema %s already published", id)
	}

	r.seqNo++
	r.schemas[id] = &schema.Schema{
		ID:        id,
		Name:      name,
		Version:   version,
		AttrNames: append([]string{}, attrNames...),
		SeqNo:     r.seqNo,
	}

	return id, nil
}

func (r *Ledger) publishCredDef(cd *schema.CredentialDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.credDefs[cd.ID]; ok {
		return errors.Errorf("credential definition %s already published", cd.ID)
	}

	r.credDefs[cd.ID] = cd
	return nil
}

func (r *Ledger) GetSchema(_ context.Context, schemaID string) (*schema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[schemaID]
	if !ok {
		return nil, errors.Wrapf(indy.ErrNotFound, "schema %s", schemaID)
	}

	return s, nil
}

func (r *Ledger) GetCredDef(_ context.Context, _, credDefID string) (*schema.CredentialDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cd, ok := r.credDefs[credDefID]
	if !ok {
		return nil, errors.Wrapf(indy.ErrNotFound, "credential definition %s", credDefID)
	}

	return cd, nil
}

func (r *Ledger) ProverEntities(ctx context.Context, submitterDID string, creds []*schema.CredentialInfo) (*schema.ProverEntities, error) {
	return indy.ResolveProverEntities(ctx, r, submitterDID, creds)
}

func (r *Ledger) VerifierEntities(ctx context.Context, submitterDID string, ids []*schema.Identifier) (*schema.VerifierEntities, error) {
	return indy.ResolveVerifierEntities(ctx, r, submitterDID, ids)
}
