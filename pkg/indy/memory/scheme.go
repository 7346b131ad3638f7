package memory

import (
	"crypto/ed25519"
	"encoding/json"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/schema"
)

var ErrBadSignature = errors.New("attribute signature does not verify")

type credDefValue struct {
	VerKey string `json:"verkey"`
}

type credentialSignature struct {
	// Binding ties every attribute signature to the holder's blinded master secret.
	Binding string            `json:"binding"`
	Attrs   map[string]string `json:"attrs"`
}

type proofBody struct {
	Nonce string                    `json:"nonce"`
	Attrs map[string]*revealedProof `json:"attrs"`
}

type revealedProof struct {
	SchemaID  string `json:"schema_id"`
	CredDefID string `json:"cred_def_id"`
	Name      string `json:"name"`
	Raw       string `json:"raw"`
	Encoded   string `json:"encoded"`
	Binding   string `json:"binding"`
	Signature string `json:"signature"`
}

func attributeMessage(credDefID, name, encoded, binding string) []byte {
	return []byte(strings.Join([]string{credDefID, name, encoded, binding}, "\x00"))
}

func credDefVerKey(cd *schema.CredentialDefinition) (ed25519.PublicKey, error) {
	if cd.Type != SignatureType {
		return nil, errors.Errorf("credential definition %s uses %q signatures", cd.ID, cd.Type)
	}

	v := &credDefValue{}
	err := json.Unmarshal(cd.Value, v)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid credential definition %s", cd.ID)
	}

	key, err := base58.Decode(v.VerKey)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid verkey in credential definition %s", cd.ID)
	}

	return key, nil
}

func verifyAttribute(key ed25519.PublicKey, credDefID, name, encoded, binding, sig string) error {
	raw, err := base58.Decode(sig)
	if err != nil {
		return errors.Wrapf(ErrBadSignature, "%s: %v", name, err)
	}

	if !ed25519.Verify(key, attributeMessage(credDefID, name, encoded, binding), raw) {
		return errors.Wrapf(ErrBadSignature, "%s", name)
	}

	return nil
}
