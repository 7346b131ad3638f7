package ursa

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty", value: "", expected: ""},
		{name: "single char", value: "A", expected: "1065"},
		{name: "name", value: "Alice", expected: "1065108105099101"},
		{name: "control char padded", value: "\t", expected: "1009"},
		{name: "digits stay text", value: "42", expected: "1052050"},
		{name: "latin-1", value: "é", expected: "1233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encode(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, enc)
		})
	}
}

func TestEncode_Unrepresentable(t *testing.T) {
	for _, v := range []string{"Ϩ", "snow ☃", "emoji 😀", "中文"} {
		enc, err := Encode(v)
		require.Error(t, err, v)
		require.True(t, errors.Is(err, ErrUnrepresentable), v)
		require.Empty(t, enc)
	}
}

func TestDecode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		dec, err := Decode("")
		require.NoError(t, err)
		require.Equal(t, "", dec)
	})

	t.Run("known value", func(t *testing.T) {
		dec, err := Decode("1065108105099101")
		require.NoError(t, err)
		require.Equal(t, "Alice", dec)
	})

	t.Run("missing sentinel", func(t *testing.T) {
		_, err := Decode("2065")
		require.True(t, errors.Is(err, ErrMalformedEncoding))
	})

	t.Run("ragged length", func(t *testing.T) {
		_, err := Decode("10651")
		require.True(t, errors.Is(err, ErrMalformedEncoding))
	})

	t.Run("non digits", func(t *testing.T) {
		_, err := Decode("10a5")
		require.True(t, errors.Is(err, ErrMalformedEncoding))
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var all strings.Builder
	for r := rune(1); r <= maxCodeUnit; r++ {
		all.WriteRune(r)
	}

	values := []string{
		"Alice",
		"101 Wilson Lane",
		"87121",
		"O'Brien-Smith, Jr.",
		"naïve café",
		"\x00leading nul",
		all.String(),
	}

	for _, v := range values {
		enc, err := Encode(v)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(enc, "1"))

		dec, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, v, dec)
	}
}
