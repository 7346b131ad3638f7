package ursa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const nonceHalfDigits = 20

var (
	// each half of a nonce is drawn from [10^19, 10^20) so both halves always render as 20 digits
	nonceHalfMin   = new(big.Int).Exp(big.NewInt(10), big.NewInt(nonceHalfDigits-1), nil)
	nonceHalfRange = new(big.Int).Sub(new(big.Int).Exp(big.NewInt(10), big.NewInt(nonceHalfDigits), nil), nonceHalfMin)

	ErrInvalidNonce = errors.New("invalid nonce")
)

// CryptoOracle hands out proof request nonces.
type CryptoOracle struct {
	rand io.Reader
}

func NewOracle() *CryptoOracle {
	return &CryptoOracle{rand: rand.Reader}
}

// NewNonce concatenates two independent random 20 digit integers (over 130 bits in total).
func (r *CryptoOracle) NewNonce() (string, error) {
	src := r.rand
	if src == nil {
		src = rand.Reader
	}

	a, err := randomHalf(src)
	if err != nil {
		return "", err
	}

	b, err := randomHalf(src)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s", a.String(), b.String()), nil
}

// SplitNonce recovers the two integers a nonce was built from.
func SplitNonce(nonce string) (*big.Int, *big.Int, error) {
	if len(nonce) != 2*nonceHalfDigits {
		return nil, nil, errors.Wrapf(ErrInvalidNonce, "expected %d digits, got %d", 2*nonceHalfDigits, len(nonce))
	}

	a, ok := new(big.Int).SetString(nonce[:nonceHalfDigits], 10)
	if !ok || a.Sign() <= 0 {
		return nil, nil, errors.Wrap(ErrInvalidNonce, "first half is not a positive integer")
	}

	b, ok := new(big.Int).SetString(nonce[nonceHalfDigits:], 10)
	if !ok || b.Sign() <= 0 {
		return nil, nil, errors.Wrap(ErrInvalidNonce, "second half is not a positive integer")
	}

	return a, b, nil
}

func randomHalf(src io.Reader) (*big.Int, error) {
	n, err := rand.Int(src, nonceHalfRange)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read random nonce material")
	}

	return n.Add(n, nonceHalfMin), nil
}
