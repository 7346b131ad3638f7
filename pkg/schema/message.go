/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

type MessageType string

const (
	CredentialOfferMsgType   MessageType = "urn:sovrin:agent:message_type:sovrin.org/credential_offer"
	CredentialRequestMsgType MessageType = "urn:sovrin:agent:message_type:sovrin.org/credential_request"
	CredentialMsgType        MessageType = "urn:sovrin:agent:message_type:sovrin.org/credential"
	ProofRequestMsgType      MessageType = "urn:sovrin:agent:message_type:sovrin.org/proof_request"
	ProofMsgType             MessageType = "urn:sovrin:agent:message_type:sovrin.org/proof"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrUnexpectedPayload  = errors.New("payload does not match message type")
	ErrMalformed          = errors.New("malformed message")
)

// Payload is implemented by every protocol artifact that travels inside an Envelope.
type Payload interface {
	Validate() error
}

var payloadTypes = map[MessageType]reflect.Type{
	CredentialOfferMsgType:   reflect.TypeOf(&IndyCredentialOffer{}),
	CredentialRequestMsgType: reflect.TypeOf(&IndyCredentialRequest{}),
	CredentialMsgType:        reflect.TypeOf(&IndyCredential{}),
	ProofRequestMsgType:      reflect.TypeOf(&IndyProofRequest{}),
	ProofMsgType:             reflect.TypeOf(&IndyProof{}),
}

func (r MessageType) Valid() bool {
	_, ok := payloadTypes[r]
	return ok
}

// Envelope is the anoncrypted outer layer. Message holds the authcrypted payload.
type Envelope struct {
	Origin  string      `json:"origin"`
	Type    MessageType `json:"type"`
	Message []byte      `json:"message"`
}

func (r *Envelope) Validate() error {
	switch {
	case r.Origin == "":
		return errors.Wrap(ErrMissingField, "envelope origin")
	case !r.Type.Valid():
		return errors.Wrapf(ErrUnknownMessageType, "%q", r.Type)
	case len(r.Message) == 0:
		return errors.Wrap(ErrMissingField, "envelope message")
	}

	return nil
}

// CheckPayload confirms out is the Go type carried by messages of type typ.
func CheckPayload(typ MessageType, out Payload) error {
	expected, ok := payloadTypes[typ]
	if !ok {
		return errors.Wrapf(ErrUnknownMessageType, "%q", typ)
	}

	if reflect.TypeOf(out) != expected {
		return errors.Wrapf(ErrUnexpectedPayload, "%s carries %s, not %T", typ, expected, out)
	}

	return nil
}

// DecodePayload strictly decodes data into out: unknown fields and missing required fields are rejected.
func DecodePayload(typ MessageType, data []byte, out Payload) error {
	err := CheckPayload(typ, out)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err = dec.Decode(out)
	if err != nil {
		return errors.Wrapf(ErrMalformed, "%s payload: %v", typ, err)
	}

	return out.Validate()
}
