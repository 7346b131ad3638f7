package crypto

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrUnknownDID = errors.New("no key for DID")

// Keyring maps this agent's DIDs to their key pairs.
type Keyring struct {
	mu   sync.RWMutex
	keys map[string]*KeyPair
}

func NewKeyring() *Keyring {
	return &Keyring{keys: map[string]*KeyPair{}}
}

func (r *Keyring) Add(did string, kp *KeyPair) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[did] = kp
}

// Create generates and stores a fresh key pair for did, returning its verkey.
func (r *Keyring) Create(did string) (string, error) {
	kp, err := NewKeyPair()
	if err != nil {
		return "", err
	}

	r.Add(did, kp)

	return kp.VerKey(), nil
}

func (r *Keyring) Get(did string) (*KeyPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kp, ok := r.keys[did]
	if !ok {
		return nil, errors.Wrap(ErrUnknownDID, did)
	}

	return kp, nil
}
