package ursa

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCryptoOracle_NewNonce(t *testing.T) {
	t.Run("unique and splittable", func(t *testing.T) {
		oracle := NewOracle()
		seen := make(map[string]struct{}, 10000)

		for i := 0; i < 10000; i++ {
			n, err := oracle.NewNonce()
			require.NoError(t, err)
			require.Len(t, n, 40)

			_, dup := seen[n]
			require.False(t, dup, "duplicate nonce %s", n)
			seen[n] = struct{}{}

			a, b, err := SplitNonce(n)
			require.NoError(t, err)
			require.Equal(t, 1, a.Sign())
			require.Equal(t, 1, b.Sign())
			require.Equal(t, n, a.String()+b.String())
		}
	})

	t.Run("zero value oracle", func(t *testing.T) {
		oracle := &CryptoOracle{}
		n, err := oracle.NewNonce()
		require.NoError(t, err)
		require.Len(t, n, 40)
	})

	t.Run("exhausted entropy", func(t *testing.T) {
		oracle := &CryptoOracle{rand: bytes.NewReader([]byte{1, 2})}
		n, err := oracle.NewNonce()
		require.Error(t, err)
		require.Empty(t, n)
	})
}

func TestSplitNonce(t *testing.T) {
	a, b, err := SplitNonce("1234567890123456789098765432109876543210")
	require.NoError(t, err)
	expectA, _ := new(big.Int).SetString("12345678901234567890", 10)
	expectB, _ := new(big.Int).SetString("98765432109876543210", 10)
	require.Equal(t, 0, expectA.Cmp(a))
	require.Equal(t, 0, expectB.Cmp(b))

	for _, bad := range []string{"", "123", "12345678901234567890x8765432109876543210", "0000000000000000000098765432109876543210"} {
		_, _, err := SplitNonce(bad)
		require.True(t, errors.Is(err, ErrInvalidNonce), bad)
	}
}
