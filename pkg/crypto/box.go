/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto implements the authenticated (authcrypt) and anonymous (anoncrypt) message encryption
// agents use between each other, on top of NaCl box.
package crypto

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

const (
	KeySize   = 32
	NonceSize = 24
)

var ErrDecrypt = errors.New("unable to decrypt message")

type KeyPair struct {
	Public  *[KeySize]byte
	Private *[KeySize]byte
}

func NewKeyPair() (*KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate key pair")
	}

	return &KeyPair{Public: pub, Private: priv}, nil
}

// KeyPairFromSeed derives a key pair from a 32 byte base58 encoded secret.
func KeyPairFromSeed(seed string) (*KeyPair, error) {
	raw, err := base58.Decode(seed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid seed")
	}

	if len(raw) != KeySize {
		return nil, errors.Errorf("seed must be %d bytes, got %d", KeySize, len(raw))
	}

	priv := new([KeySize]byte)
	copy(priv[:], raw)

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive public key")
	}

	kp := &KeyPair{Public: new([KeySize]byte), Private: priv}
	copy(kp.Public[:], pub)

	return kp, nil
}

func (r *KeyPair) VerKey() string {
	return base58.Encode(r.Public[:])
}

func ParseVerKey(verkey string) (*[KeySize]byte, error) {
	raw, err := base58.Decode(verkey)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid verkey %q", verkey)
	}

	if len(raw) != KeySize {
		return nil, errors.Errorf("verkey must be %d bytes, got %d", KeySize, len(raw))
	}

	out := new([KeySize]byte)
	copy(out[:], raw)

	return out, nil
}

// AuthCrypt seals payload from sender to recipient. The random nonce is prepended to the box.
func AuthCrypt(sender *KeyPair, recipient *[KeySize]byte, payload []byte) ([]byte, error) {
	var nonce [NonceSize]byte
	_, err := io.ReadFull(rand.Reader, nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "unable to create nonce")
	}

	return box.Seal(nonce[:], payload, &nonce, recipient, sender.Private), nil
}

func AuthDecrypt(recipient *KeyPair, sender *[KeySize]byte, msg []byte) ([]byte, error) {
	if len(msg) < NonceSize+box.Overhead {
		return nil, errors.Wrap(ErrDecrypt, "message too short")
	}

	var nonce [NonceSize]byte
	copy(nonce[:], msg[:NonceSize])

	out, ok := box.Open(nil, msg[NonceSize:], &nonce, sender, recipient.Private)
	if !ok {
		return nil, ErrDecrypt
	}

	return out, nil
}

// AnonCrypt seals payload for recipient under an ephemeral sender key (libsodium crypto_box_seal).
func AnonCrypt(recipient *[KeySize]byte, payload []byte, randSource io.Reader) ([]byte, error) {
	if randSource == nil {
		randSource = rand.Reader
	}

	sealed, err := box.SealAnonymous(nil, payload, recipient, randSource)
	if err != nil {
		return nil, errors.Wrap(err, "unable to seal message")
	}

	return sealed, nil
}

func AnonDecrypt(recipient *KeyPair, msg []byte) ([]byte, error) {
	if len(msg) < box.AnonymousOverhead {
		return nil, errors.Wrap(ErrDecrypt, "message too short")
	}

	out, ok := box.OpenAnonymous(nil, msg, recipient.Public, recipient.Private)
	if !ok {
		return nil, ErrDecrypt
	}

	return out, nil
}
