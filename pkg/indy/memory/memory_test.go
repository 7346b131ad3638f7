package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/ursa"
)

type fixture struct {
	ledger    *Ledger
	issuer    *Wallet
	holder    *Wallet
	schemaID  string
	credDefID string
}

func setup(t *testing.T) *fixture {
	ctx := context.Background()
	f := &fixture{ledger: NewLedger()}

	var err error
	f.issuer, err = NewWallet(f.ledger, ursa.NewOracle())
	require.NoError(t, err)
	f.holder, err = NewWallet(f.ledger, ursa.NewOracle())
	require.NoError(t, err)

	f.schemaID, err = f.ledger.PublishSchema(ctx, "did:issuer", "person", "1.0", []string{"name", "age"})
	require.NoError(t, err)
	require.Equal(t, "did:issuer:2:person:1.0", f.schemaID)

	f.credDefID, err = f.issuer.CreateCredentialDefinition(ctx, "did:issuer", f.schemaID, "default")
	require.NoError(t, err)

	return f
}

func (r *fixture) issue(t *testing.T, data map[string]string) string {
	ctx := context.Background()

	offer, err := r.issuer.CreateCredentialOffer(ctx, r.credDefID)
	require.NoError(t, err)
	require.NoError(t, offer.Validate())

	cd, err := r.ledger.GetCredDef(ctx, "did:holder", offer.CredDefID)
	require.NoError(t, err)

	req, meta, err := r.holder.CreateCredentialRequest(ctx, "did:holder", offer, cd)
	require.NoError(t, err)
	require.NoError(t, req.Validate())

	s, err := r.ledger.GetSchema(ctx, offer.SchemaID)
	require.NoError(t, err)

	values, err := ursa.BuildValues(s.AttrNames, data)
	require.NoError(t, err)

	cred, err := r.issuer.CreateCredential(ctx, offer, req, values.Values())
	require.NoError(t, err)
	require.NoError(t, cred.Validate())

	id, err := r.holder.StoreCredential(ctx, meta, cred, cd)
	require.NoError(t, err)

	return id
}

func (r *fixture) proofRequest() *schema.IndyProofRequest {
	return &schema.IndyProofRequest{
		Name:    "default-Proof",
		Version: "0.1",
		Nonce:   "1234567890123456789012345678901234567890",
		RequestedAttributes: map[string]*schema.IndyProofRequestAttr{
			"attr1_referent": {Name: "name", Restrictions: []*schema.Restriction{{CredDefID: r.credDefID}}},
		},
	}
}

func (r *fixture) prove(t *testing.T, req *schema.IndyProofRequest, credID string) *schema.IndyProof {
	ctx := context.Background()
	rc := &schema.IndyRequestedCredentials{
		RequestedAttributes: map[string]*schema.IndyRequestedAttribute{},
	}
	for referent := range req.RequestedAttributes {
		rc.RequestedAttributes[referent] = &schema.IndyRequestedAttribute{CredID: credID, Revealed: true}
	}

	infos, err := r.holder.GetCredentials(ctx)
	require.NoError(t, err)

	pents, err := r.ledger.ProverEntities(ctx, "did:holder", infos)
	require.NoError(t, err)

	proof, err := r.holder.CreateProof(ctx, req, rc, pents)
	require.NoError(t, err)

	return proof
}

func TestIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	credID := f.issue(t, map[string]string{"name": "Alice", "age": "42"})

	creds, err := f.holder.GetCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	require.Equal(t, credID, creds[0].Referent)
	require.Equal(t, map[string]string{"name": "Alice", "age": "42"}, creds[0].Attrs)
	require.Equal(t, f.credDefID, creds[0].CredDefID)

	req := f.proofRequest()
	found, err := f.holder.GetCredentialsForProofRequest(ctx, req)
	require.NoError(t, err)
	require.Len(t, found.Attrs["attr1_referent"], 1)
	require.Equal(t, credID, found.Attrs["attr1_referent"][0].CredInfo.Referent)

	proof := f.prove(t, req, credID)
	require.Equal(t, "Alice", proof.RequestedProof.RevealedAttrs["attr1_referent"].Raw)
	require.Equal(t, "1065108105099101", proof.RequestedProof.RevealedAttrs["attr1_referent"].Encoded)

	vents, err := f.ledger.VerifierEntities(ctx, "did:verifier", proof.Identifiers)
	require.NoError(t, err)

	ok, err := NewVerifier().VerifyProof(ctx, req, proof, vents)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyProof_Rejects(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	credID := f.issue(t, map[string]string{"name": "Alice"})
	req := f.proofRequest()

	verify := func(t *testing.T, req *schema.IndyProofRequest, proof *schema.IndyProof) bool {
		vents, err := f.ledger.VerifierEntities(ctx, "did:verifier", proof.Identifiers)
		require.NoError(t, err)
		ok, err := NewVerifier().VerifyProof(ctx, req, proof, vents)
		require.NoError(t, err)
		return ok
	}

	t.Run("different nonce", func(t *testing.T) {
		proof := f.prove(t, req, credID)
		other := *req
		other.Nonce = "9999999999999999999999999999999999999999"
		require.False(t, verify(t, &other, proof))
	})

	t.Run("tampered revealed value", func(t *testing.T) {
		proof := f.prove(t, req, credID)
		proof.RequestedProof.RevealedAttrs["attr1_referent"].Raw = "Mallory"
		require.False(t, verify(t, req, proof))
	})

	t.Run("tampered signed encoding", func(t *testing.T) {
		proof := f.prove(t, req, credID)

		body := &proofBody{}
		require.NoError(t, json.Unmarshal(proof.Proof, body))
		enc, err := ursa.Encode("Mallory")
		require.NoError(t, err)
		body.Attrs["attr1_referent"].Raw = "Mallory"
		body.Attrs["attr1_referent"].Encoded = enc
		proof.Proof, _ = json.Marshal(body)
		proof.RequestedProof.RevealedAttrs["attr1_referent"].Raw = "Mallory"
		proof.RequestedProof.RevealedAttrs["attr1_referent"].Encoded = enc

		require.False(t, verify(t, req, proof))
	})

	t.Run("restriction not met", func(t *testing.T) {
		proof := f.prove(t, req, credID)
		other := *req
		other.RequestedAttributes = map[string]*schema.IndyProofRequestAttr{
			"attr1_referent": {Name: "name", Restrictions: []*schema.Restriction{{CredDefID: "some-other-def"}}},
		}
		require.False(t, verify(t, &other, proof))
	})

	t.Run("missing referent", func(t *testing.T) {
		proof := f.prove(t, req, credID)
		other := *req
		other.RequestedAttributes = map[string]*schema.IndyProofRequestAttr{
			"attr1_referent": req.RequestedAttributes["attr1_referent"],
			"attr2_referent": {Name: "name"},
		}
		require.False(t, verify(t, &other, proof))
	})

	t.Run("missing ledger entities", func(t *testing.T) {
		proof := f.prove(t, req, credID)
		_, err := NewVerifier().VerifyProof(ctx, req, proof, &schema.VerifierEntities{})
		require.Error(t, err)
	})
}

func TestWallet_Errors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	t.Run("offer without issuing key", func(t *testing.T) {
		_, err := f.holder.CreateCredentialOffer(ctx, f.credDefID)
		require.Error(t, err)
	})

	t.Run("store with foreign metadata", func(t *testing.T) {
		offer, err := f.issuer.CreateCredentialOffer(ctx, f.credDefID)
		require.NoError(t, err)
		cd, err := f.ledger.GetCredDef(ctx, "", f.credDefID)
		require.NoError(t, err)

		req, _, err := f.holder.CreateCredentialRequest(ctx, "did:holder", offer, cd)
		require.NoError(t, err)
		_, otherMeta, err := f.issuer.CreateCredentialRequest(ctx, "did:issuer", offer, cd)
		require.NoError(t, err)

		cred, err := f.issuer.CreateCredential(ctx, offer, req, schema.IndyCredentialValues{})
		require.NoError(t, err)

		_, err = f.holder.StoreCredential(ctx, otherMeta, cred, cd)
		require.Error(t, err)
	})

	t.Run("no candidate", func(t *testing.T) {
		found, err := f.holder.GetCredentialsForProofRequest(ctx, f.proofRequest())
		require.NoError(t, err)
		require.Empty(t, found.Attrs["attr1_referent"])
	})

	t.Run("duplicate schema", func(t *testing.T) {
		_, err := f.ledger.PublishSchema(ctx, "did:issuer", "person", "1.0", []string{"name"})
		require.Error(t, err)
	})

	t.Run("issued definitions", func(t *testing.T) {
		cds, err := f.issuer.CredentialDefinitions(ctx)
		require.NoError(t, err)
		require.Len(t, cds, 1)
		require.Equal(t, "default", cds[0].Tag)
		require.Equal(t, f.schemaID, cds[0].SchemaID)

		cds, err = f.holder.CredentialDefinitions(ctx)
		require.NoError(t, err)
		require.Empty(t, cds)
	})

	t.Run("definition value carries the issuing verkey", func(t *testing.T) {
		cd, err := f.ledger.GetCredDef(ctx, "", f.credDefID)
		require.NoError(t, err)

		value := &credDefValue{}
		require.NoError(t, json.Unmarshal(cd.Value, value))
		require.NotEmpty(t, value.VerKey)
		_, err = credDefVerKey(cd)
		require.NoError(t, err)
	})

	t.Run("unknown credential", func(t *testing.T) {
		_, err := f.holder.GetCredential(ctx, "missing")
		require.True(t, errors.Is(err, indy.ErrNotFound))
	})

	t.Run("unusable master secret", func(t *testing.T) {
		w, err := NewWallet(f.ledger, ursa.NewOracle())
		require.NoError(t, err)
		w.masterSecret = make([]byte, 65)

		offer, err := f.issuer.CreateCredentialOffer(ctx, f.credDefID)
		require.NoError(t, err)
		cd, err := f.ledger.GetCredDef(ctx, "", f.credDefID)
		require.NoError(t, err)

		_, _, err = w.CreateCredentialRequest(ctx, "did:holder", offer, cd)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to blind master secret")
	})
}
