package memory

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/ursa"
)

var logger = logrus.WithField("module", "memory")

// Verifier checks proofs produced by Wallet.CreateProof.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyProof reports false for a proof that does not satisfy req. Errors are reserved for inputs it
// cannot evaluate at all.
func (r *Verifier) VerifyProof(_ context.Context, req *schema.IndyProofRequest, proof *schema.IndyProof,
	entities *schema.VerifierEntities) (bool, error) {

	if req == nil || proof == nil || entities == nil {
		return false, errors.New("proof request, proof and ledger entities are required")
	}

	body := &proofBody{}
	err := json.Unmarshal(proof.Proof, body)
	if err != nil {
		return false, errors.Wrap(err, "unreadable proof body")
	}

	if body.Nonce != req.Nonce {
		return fail("proof was built for a different request"), nil
	}

	if len(req.RequestedPredicates) > 0 {
		return fail("predicates are not supported"), nil
	}

	if proof.RequestedProof == nil {
		return fail("proof carries no requested_proof"), nil
	}

	for referent, attr := range req.RequestedAttributes {
		rp, ok := body.Attrs[referent]
		if !ok {
			return fail("missing referent " + referent), nil
		}

		if rp.Name != attr.Name || !attr.SatisfiedBy(rp.SchemaID, rp.CredDefID) {
			return fail("referent " + referent + " does not satisfy its restrictions"), nil
		}

		if !identified(proof.Identifiers, rp.SchemaID, rp.CredDefID) {
			return fail("referent " + referent + " names an undeclared credential"), nil
		}

		cd, ok := entities.CredDefs[rp.CredDefID]
		if !ok {
			return false, errors.Errorf("credential definition %s missing from ledger entities", rp.CredDefID)
		}

		if _, ok := entities.Schemas[rp.SchemaID]; !ok {
			return false, errors.Errorf("schema %s missing from ledger entities", rp.SchemaID)
		}

		key, err := credDefVerKey(cd)
		if err != nil {
			return false, err
		}

		err = verifyAttribute(key, rp.CredDefID, rp.Name, rp.Encoded, rp.Binding, rp.Signature)
		if err != nil {
			return fail(err.Error()), nil
		}

		revealed, isRevealed := proof.RequestedProof.RevealedAttrs[referent]
		_, isHidden := proof.RequestedProof.UnrevealedAttrs[referent]
		switch {
		case isRevealed:
			enc, err := ursa.Encode(revealed.Raw)
			if err != nil || enc != rp.Encoded || revealed.Encoded != rp.Encoded || revealed.Raw != rp.Raw {
				return fail("revealed value of " + referent + " does not match its signed encoding"), nil
			}
		case !isHidden:
			return fail("referent " + referent + " is neither revealed nor unrevealed"), nil
		}
	}

	return true, nil
}

func identified(ids []*schema.Identifier, schemaID, credDefID string) bool {
	for _, id := range ids {
		if id.SchemaID == schemaID && id.CredDefID == credDefID {
			return true
		}
	}

	return false
}

func fail(reason string) bool {
	logger.WithField("reason", reason).Info("proof rejected")
	return false
}
