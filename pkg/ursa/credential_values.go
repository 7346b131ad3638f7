package ursa

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/schema"
)

type CredentialValues struct {
	attrs map[string]CredentialAttributeValue
}

type CredentialAttributeValue struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
}

func NewValues() *CredentialValues {
	return &CredentialValues{
		attrs: map[string]CredentialAttributeValue{},
	}
}

// BuildValues encodes the offered data for every schema attribute that has a non empty value.
// Attributes missing from the data, or present with an empty value, are left out.
func BuildValues(attrNames []string, data map[string]string) (*CredentialValues, error) {
	vals := NewValues()
	for _, name := range attrNames {
		raw := data[name]
		if raw == "" {
			continue
		}

		err := vals.AddValue(name, raw)
		if err != nil {
			return nil, err
		}
	}

	return vals, nil
}

func (r *CredentialValues) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.attrs)
}

func (r *CredentialValues) AddValue(name string, raw string) error {
	enc, err := Encode(raw)
	if err != nil {
		return errors.Wrapf(err, "unable to encode attribute %s", name)
	}

	r.attrs[name] = CredentialAttributeValue{
		Raw:     raw,
		Encoded: enc,
	}

	return nil
}

func (r *CredentialValues) Len() int {
	return len(r.attrs)
}

// Values converts to the wire representation carried inside an Indy credential.
func (r *CredentialValues) Values() schema.IndyCredentialValues {
	out := schema.IndyCredentialValues{}
	for name, v := range r.attrs {
		out[name] = &schema.IndyAttributeValue{Raw: v.Raw, Encoded: v.Encoded}
	}

	return out
}
