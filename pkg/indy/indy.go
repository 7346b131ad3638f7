/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package indy declares the wallet, ledger and verification primitives the exchange coordinators drive.
package indy

import (
	"context"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/schema"
)

var (
	ErrNotFound              = errors.New("ledger object not found")
	ErrRevocationUnsupported = errors.New("revocation registries are not supported")
)

//go:generate mockery -name=Wallet
type Wallet interface {
	GetCredentials(ctx context.Context) ([]*schema.CredentialInfo, error)
	// CredentialDefinitions lists the definitions this agent issues against.
	CredentialDefinitions(ctx context.Context) ([]*schema.CredentialDefinition, error)
	CreateCredentialOffer(ctx context.Context, credDefID string) (*schema.IndyCredentialOffer, error)
	CreateCredentialRequest(ctx context.Context, proverDID string, offer *schema.IndyCredentialOffer,
		credDef *schema.CredentialDefinition) (*schema.IndyCredentialRequest, *schema.IndyCredentialRequestMetadata, error)
	CreateCredential(ctx context.Context, offer *schema.IndyCredentialOffer, req *schema.IndyCredentialRequest,
		values schema.IndyCredentialValues) (*schema.IndyCredential, error)
	StoreCredential(ctx context.Context, meta *schema.IndyCredentialRequestMetadata, cred *schema.IndyCredential,
		credDef *schema.CredentialDefinition) (string, error)
	GetCredentialsForProofRequest(ctx context.Context, req *schema.IndyProofRequest) (*schema.CredentialsForProofRequest, error)
	CreateProof(ctx context.Context, req *schema.IndyProofRequest, creds *schema.IndyRequestedCredentials,
		entities *schema.ProverEntities) (*schema.IndyProof, error)
}

//go:generate mockery -name=Ledger
type Ledger interface {
	GetSchema(ctx context.Context, schemaID string) (*schema.Schema, error)
	GetCredDef(ctx context.Context, submitterDID, credDefID string) (*schema.CredentialDefinition, error)
	ProverEntities(ctx context.Context, submitterDID string, creds []*schema.CredentialInfo) (*schema.ProverEntities, error)
	VerifierEntities(ctx context.Context, submitterDID string, ids []*schema.Identifier) (*schema.VerifierEntities, error)
}

//go:generate mockery -name=Verifier
type Verifier interface {
	VerifyProof(ctx context.Context, req *schema.IndyProofRequest, proof *schema.IndyProof, entities *schema.VerifierEntities) (bool, error)
}

//go:generate mockery -name=Oracle
type Oracle interface {
	NewNonce() (string, error)
}
