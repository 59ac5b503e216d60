package dualdate

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using [Date.ToWireString].
// The unset Date encodes as empty text.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.ToWireString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [Parse].
// Empty text yields the unset Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return errors.WithMessage(err, "unmarshal dualdate.Date")
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The unset Date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.ToWireString())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts null, the strict
// wire input and RFC 3339 strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "unmarshal dualdate.Date")
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.ToWireString(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("unmarshal dualdate.Date: line %d: want scalar node", value.Line)
	}
	if value.ShortTag() == "!!null" {
		*d = Date{}
		return nil
	}
	return d.UnmarshalText([]byte(value.Value))
}
