package ursa

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCredentialValues_AddValue(t *testing.T) {
	type args struct {
		name string
		raw  string
	}
	tests := []struct {
		name     string
		args     args
		expected string
	}{
		{name: "address2", args: args{name: "address2", raw: "101 Wilson Lane"}, expected: "1049048049032087105108115111110032076097110101"},
		{name: "zip", args: args{name: "zip", raw: "87121"}, expected: "1056055049050049"},
		{name: "city", args: args{name: "city", raw: "SLC"}, expected: "1083076067"},
		{name: "state", args: args{name: "state", raw: "UT"}, expected: "1085084"},
		{name: "str True", args: args{name: "str True", raw: "True"}, expected: "1084114117101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewValues()
			err := r.AddValue(tt.args.name, tt.args.raw)
			require.NoError(t, err)
			result, err := json.MarshalIndent(r, " ", " ")
			require.NoError(t, err)
			m := map[string]interface{}{}
			err = json.Unmarshal(result, &m)
			require.NoError(t, err)
			vals, ok := m[tt.args.name].(map[string]interface{})
			require.True(t, ok)

			require.Equal(t, tt.args.raw, vals["raw"], tt.name)
			require.Equal(t, tt.expected, vals["encoded"].(string), tt.name)
		})
	}
}

func TestCredentialValues_Unrepresentable(t *testing.T) {
	r := NewValues()
	err := r.AddValue("name", "Zoë ☃")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnrepresentable))
	require.Contains(t, err.Error(), "name")
	require.Equal(t, 0, r.Len())
}

func TestBuildValues(t *testing.T) {
	t.Run("only schema attributes with data", func(t *testing.T) {
		vals, err := BuildValues([]string{"name", "age", "email"}, map[string]string{
			"name":  "Alice",
			"age":   "",
			"extra": "ignored",
		})
		require.NoError(t, err)
		require.Equal(t, 1, vals.Len())

		out := vals.Values()
		require.Len(t, out, 1)
		require.Equal(t, "Alice", out["name"].Raw)
		enc, _ := Encode("Alice")
		require.Equal(t, enc, out["name"].Encoded)
	})

	t.Run("nil data", func(t *testing.T) {
		vals, err := BuildValues([]string{"name"}, nil)
		require.NoError(t, err)
		require.Equal(t, 0, vals.Len())
	})

	t.Run("unrepresentable value", func(t *testing.T) {
		vals, err := BuildValues([]string{"name"}, map[string]string{"name": "☃"})
		require.Error(t, err)
		require.Nil(t, vals)
	})
}
