package memory

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/schema"
)

// Wallet holds one agent's issuing keys, master secret and credentials.
type Wallet struct {
	mu             sync.RWMutex
	ledger         *Ledger
	oracle         indy.Oracle
	masterSecretID string
	masterSecret   []byte
	keys           map[string]ed25519.PrivateKey
	issued         []string
	creds          []*storedCredential
}

type storedCredential struct {
	info *schema.CredentialInfo
	cred *schema.IndyCredential
}

func NewWallet(ledger *Ledger, oracle indy.Oracle) (*Wallet, error) {
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create master secret")
	}

	return &Wallet{
		ledger:         ledger,
		oracle:         oracle,
		masterSecretID: uuid.New().String(),
		masterSecret:   secret,
		keys:           map[string]ed25519.PrivateKey{},
	}, nil
}

// CreateCredentialDefinition generates an issuing key for schemaID and publishes its definition.
func (r *Wallet) CreateCredentialDefinition(ctx context.Context, issuerDID, schemaID, tag string) (string, error) {
	s, err := r.ledger.GetSchema(ctx, schemaID)
	if err != nil {
		return "", err
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", errors.Wrap(err, "unable to generate issuing key")
	}

	value, err := json.Marshal(&credDefValue{VerKey: base58.Encode(pub)})
	if err != nil {
		return "", errors.Wrap(err, "unable to encode credential definition value")
	}

	cd := &schema.CredentialDefinition{
		ID:       fmt.Sprintf("%s:3:%s:%d:%s", issuerDID, SignatureType, s.SeqNo, tag),
		SchemaID: s.ID,
		Type:     SignatureType,
		Tag:      tag,
		Value:    value,
	}

	err = r.ledger.publishCredDef(cd)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.keys[cd.ID] = priv
	r.issued = append(r.issued, cd.ID)
	r.mu.Unlock()

	return cd.ID, nil
}

func (r *Wallet) CredentialDefinitions(ctx context.Context) ([]*schema.CredentialDefinition, error) {
	r.mu.RLock()
	ids := append([]string{}, r.issued...)
	r.mu.RUnlock()

	out := make([]*schema.CredentialDefinition, 0, len(ids))
	for _, id := range ids {
		cd, err := r.ledger.GetCredDef(ctx, "", id)
		if err != nil {
			return nil, err
		}
		out = append(out, cd)
	}

	return out, nil
}

func (r *Wallet) GetCredentials(_ context.Context) ([]*schema.CredentialInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*schema.CredentialInfo, 0, len(r.creds))
	for _, c := range r.creds {
		out = append(out, copyInfo(c.info))
	}

	return out, nil
}

func (r *Wallet) CreateCredentialOffer(ctx context.Context, credDefID string) (*schema.IndyCredentialOffer, error) {
	r.mu.RLock()
	_, ok := r.keys[credDefID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("wallet holds no issuing key for %s", credDefID)
	}

	cd, err := r.ledger.GetCredDef(ctx, "", credDefID)
	if err != nil {
		return nil, err
	}

	nonce, err := r.oracle.NewNonce()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create offer nonce")
	}

	v := &credDefValue{}
	_ = json.Unmarshal(cd.Value, v)

	return &schema.IndyCredentialOffer{
		SchemaID:            cd.SchemaID,
		CredDefID:           cd.ID,
		KeyCorrectnessProof: map[string]interface{}{"verkey": v.VerKey},
		Nonce:               nonce,
	}, nil
}

func (r *Wallet) CreateCredentialRequest(_ context.Context, proverDID string, offer *schema.IndyCredentialOffer,
	credDef *schema.CredentialDefinition) (*schema.IndyCredentialRequest, *schema.IndyCredentialRequestMetadata, error) {

	if offer.CredDefID != credDef.ID {
		return nil, nil, errors.Errorf("offer for %s does not match credential definition %s", offer.CredDefID, credDef.ID)
	}

	nonce, err := r.oracle.NewNonce()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create request nonce")
	}

	binding, err := r.blind(offer.Nonce)
	if err != nil {
		return nil, nil, err
	}

	req := &schema.IndyCredentialRequest{
		ProverDID:                 proverDID,
		CredDefID:                 credDef.ID,
		BlindedMS:                 map[string]interface{}{"u": binding},
		BlindedMSCorrectnessProof: map[string]interface{}{"c": base58.Encode([]byte(offer.Nonce))},
		Nonce:                     nonce,
	}

	meta := &schema.IndyCredentialRequestMetadata{
		MasterSecretBlindingData: map[string]interface{}{"v_prime": binding},
		Nonce:                    nonce,
		MasterSecretName:         r.masterSecretID,
	}

	return req, meta, nil
}

func (r *Wallet) CreateCredential(_ context.Context, offer *schema.IndyCredentialOffer, req *schema.IndyCredentialRequest,
	values schema.IndyCredentialValues) (*schema.IndyCredential, error) {

	if req.CredDefID != offer.CredDefID {
		return nil, errors.Errorf("request for %s does not match offer for %s", req.CredDefID, offer.CredDefID)
	}

	r.mu.RLock()
	key, ok := r.keys[offer.CredDefID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("wallet holds no issuing key for %s", offer.CredDefID)
	}

	binding, _ := req.BlindedMS["u"].(string)
	if binding == "" {
		return nil, errors.New("credential request carries no blinded master secret")
	}

	sig := &credentialSignature{Binding: binding, Attrs: map[string]string{}}
	for name, v := range values {
		sig.Attrs[name] = base58.Encode(ed25519.Sign(key, attributeMessage(offer.CredDefID, name, v.Encoded, binding)))
	}

	sd, err := json.Marshal(sig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode credential signature")
	}

	pd, err := json.Marshal(map[string]string{"nonce": req.Nonce})
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode signature correctness proof")
	}

	return &schema.IndyCredential{
		SchemaID:                  offer.SchemaID,
		CredDefID:                 offer.CredDefID,
		Signature:                 sd,
		SignatureCorrectnessProof: pd,
		Values:                    values,
	}, nil
}

func (r *Wallet) StoreCredential(_ context.Context, meta *schema.IndyCredentialRequestMetadata, cred *schema.IndyCredential,
	credDef *schema.CredentialDefinition) (string, error) {

	if meta == nil || meta.MasterSecretName != r.masterSecretID {
		return "", errors.New("credential request metadata was not created by this wallet")
	}

	key, err := credDefVerKey(credDef)
	if err != nil {
		return "", err
	}

	sig := &credentialSignature{}
	err = json.Unmarshal(cred.Signature, sig)
	if err != nil {
		return "", errors.Wrap(err, "invalid credential signature")
	}

	if v, _ := meta.MasterSecretBlindingData["v_prime"].(string); v != sig.Binding {
		return "", errors.New("credential is not bound to this wallet's master secret")
	}

	info := &schema.CredentialInfo{
		Referent:  uuid.New().String(),
		Attrs:     map[string]string{},
		SchemaID:  cred.SchemaID,
		CredDefID: cred.CredDefID,
	}

	for name, v := range cred.Values {
		err = verifyAttribute(key, cred.CredDefID, name, v.Encoded, sig.Binding, sig.Attrs[name])
		if err != nil {
			return "", err
		}
		info.Attrs[name] = v.Raw
	}

	r.mu.Lock()
	r.creds = append(r.creds, &storedCredential{info: info, cred: cred})
	r.mu.Unlock()

	return info.Referent, nil
}

func (r *Wallet) GetCredentialsForProofRequest(_ context.Context, req *schema.IndyProofRequest) (*schema.CredentialsForProofRequest, error) {
	out := &schema.CredentialsForProofRequest{
		Attrs:      map[string][]*schema.RequestedCredential{},
		Predicates: map[string][]*schema.RequestedCredential{},
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for referent, attr := range req.RequestedAttributes {
		candidates := []*schema.RequestedCredential{}
		for _, c := range r.creds {
			if _, ok := c.info.Attrs[attr.Name]; !ok {
				continue
			}

			if attr.SatisfiedBy(c.info.SchemaID, c.info.CredDefID) {
				candidates = append(candidates, &schema.RequestedCredential{CredInfo: copyInfo(c.info)})
			}
		}
		out.Attrs[referent] = candidates
	}

	for referent := range req.RequestedPredicates {
		out.Predicates[referent] = []*schema.RequestedCredential{}
	}

	return out, nil
}

func (r *Wallet) CreateProof(_ context.Context, req *schema.IndyProofRequest, creds *schema.IndyRequestedCredentials,
	entities *schema.ProverEntities) (*schema.IndyProof, error) {

	if len(creds.RequestedPredicates) > 0 || len(creds.SelfAttestedAttrs) > 0 {
		return nil, errors.New("predicates and self attested attributes are not supported")
	}

	body := &proofBody{Nonce: req.Nonce, Attrs: map[string]*revealedProof{}}
	requested := &schema.IndyRequestedProof{
		RevealedAttrs:     map[string]*schema.RevealedAttributeInfo{},
		SelfAttestedAttrs: map[string]string{},
		UnrevealedAttrs:   map[string]*schema.SubProofReferent{},
		Predicates:        map[string]*schema.SubProofReferent{},
	}

	var identifiers []*schema.Identifier
	subProof := map[string]int32{}

	r.mu.RLock()
	defer r.mu.RUnlock()

	referents := make([]string, 0, len(req.RequestedAttributes))
	for referent := range req.RequestedAttributes {
		referents = append(referents, referent)
	}
	sort.Strings(referents)

	for _, referent := range referents {
		attr := req.RequestedAttributes[referent]
		sel, ok := creds.RequestedAttributes[referent]
		if !ok {
			return nil, errors.Errorf("no credential selected for %s", referent)
		}

		c := r.credential(sel.CredID)
		if c == nil {
			return nil, errors.Errorf("credential %s is not in the wallet", sel.CredID)
		}

		if _, ok := entities.Schemas[c.info.SchemaID]; !ok {
			return nil, errors.Errorf("schema %s missing from ledger entities", c.info.SchemaID)
		}
		if _, ok := entities.CredDefs[c.info.CredDefID]; !ok {
			return nil, errors.Errorf("credential definition %s missing from ledger entities", c.info.CredDefID)
		}

		v, ok := c.cred.Values[attr.Name]
		if !ok {
			return nil, errors.Errorf("credential %s has no %s attribute", sel.CredID, attr.Name)
		}

		sig := &credentialSignature{}
		err := json.Unmarshal(c.cred.Signature, sig)
		if err != nil {
			return nil, errors.Wrapf(err, "credential %s", sel.CredID)
		}

		idx, ok := subProof[sel.CredID]
		if !ok {
			idx = int32(len(identifiers))
			subProof[sel.CredID] = idx
			identifiers = append(identifiers, &schema.Identifier{SchemaID: c.info.SchemaID, CredDefID: c.info.CredDefID})
		}

		body.Attrs[referent] = &revealedProof{
			SchemaID:  c.info.SchemaID,
			CredDefID: c.info.CredDefID,
			Name:      attr.Name,
			Encoded:   v.Encoded,
			Binding:   sig.Binding,
			Signature: sig.Attrs[attr.Name],
		}

		if sel.Revealed {
			body.Attrs[referent].Raw = v.Raw
			requested.RevealedAttrs[referent] = &schema.RevealedAttributeInfo{SubProofIndex: idx, Raw: v.Raw, Encoded: v.Encoded}
		} else {
			requested.UnrevealedAttrs[referent] = &schema.SubProofReferent{SubProofIndex: idx}
		}
	}

	d, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal proof")
	}

	return &schema.IndyProof{
		Proof:          d,
		RequestedProof: requested,
		Identifiers:    identifiers,
	}, nil
}

// GetCredential returns the held credential stored under referent.
func (r *Wallet) GetCredential(_ context.Context, referent string) (*schema.IndyCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.credential(referent)
	if c == nil {
		return nil, errors.Wrapf(indy.ErrNotFound, "credential %s", referent)
	}

	out := *c.cred
	return &out, nil
}

func (r *Wallet) credential(referent string) *storedCredential {
	for _, c := range r.creds {
		if c.info.Referent == referent {
			return c
		}
	}

	return nil
}

func (r *Wallet) blind(nonce string) (string, error) {
	h, err := blake2b.New256(r.masterSecret)
	if err != nil {
		return "", errors.Wrap(err, "unable to blind master secret")
	}

	_, _ = h.Write([]byte(nonce))
	return base58.Encode(h.Sum(nil)), nil
}

func copyInfo(in *schema.CredentialInfo) *schema.CredentialInfo {
	out := *in
	out.Attrs = make(map[string]string, len(in.Attrs))
	for k, v := range in.Attrs {
		out.Attrs[k] = v
	}

	return &out
}
