package dualdate_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/dualdate"
)

type appointment struct {
	StartsAt dualdate.Date `json:"starts_at" yaml:"starts_at"`
	EndsAt   dualdate.Date `json:"ends_at" yaml:"ends_at"`
}

func newYear() dualdate.Date {
	return dualdate.FromLocal(fields(2019, time.January, 1, 0, 0, 0))
}

func TestJSON_Marshal(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(appointment{StartsAt: newYear()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"starts_at":"2019-01-01T00:00:00.000Z","ends_at":null}`, string(b))
}

func TestJSON_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
	}{
		{"canonical", `{"starts_at":"2019-01-01T00:00:00.000Z"}`},
		{"strict wire input", `{"starts_at":"2019-01-01T00:00:00"}`},
		{"offset", `{"starts_at":"2019-01-01T09:00:00+09:00","ends_at":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got appointment
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.True(t, got.StartsAt.Equal(newYear()))
			assert.Equal(t, newYear().DisplayableLocal(), got.StartsAt.DisplayableLocal())
			assert.True(t, got.EndsAt.IsZero())
		})
	}
}

func TestJSON_UnmarshalErrors(t *testing.T) {
	t.Parallel()

	var got appointment
	err := json.Unmarshal([]byte(`{"starts_at":"2019-01-01"}`), &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, dualdate.ErrFormat)
	assert.Contains(t, err.Error(), "unmarshal dualdate.Date")

	err = json.Unmarshal([]byte(`{"starts_at":20190101}`), &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, dualdate.ErrFormat)
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	in := appointment{
		StartsAt: dualdate.FromLocal(fields(2024, time.February, 29, 9, 15, 0)),
		EndsAt:   dualdate.FromLocal(fields(2024, time.February, 29, 10, 0, 0)),
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out appointment
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestText(t *testing.T) {
	t.Parallel()

	b, err := newYear().MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2019-01-01T00:00:00.000Z", string(b))

	b, err = dualdate.Date{}.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, b)

	var d dualdate.Date
	require.NoError(t, d.UnmarshalText([]byte("2019-01-01T00:00:00")))
	assert.True(t, d.Equal(newYear()))

	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.UnmarshalText([]byte("yesterday")), dualdate.ErrFormat)
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	b, err := yaml.Marshal(appointment{StartsAt: newYear()})
	require.NoError(t, err)
	assert.Contains(t, string(b), "2019-01-01T00:00:00.000Z")
	assert.Contains(t, string(b), "ends_at: null")

	var out appointment
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.True(t, out.StartsAt.Equal(newYear()))
	assert.True(t, out.EndsAt.IsZero())
}

func TestYAML_Unmarshal(t *testing.T) {
	t.Parallel()

	var out appointment
	require.NoError(t, yaml.Unmarshal([]byte("starts_at: 2019-01-01T00:00:00\n"), &out))
	assert.Equal(t, fields(2019, time.January, 1, 0, 0, 0), out.StartsAt.DisplayableLocal())

	err := yaml.Unmarshal([]byte("starts_at: 2019-01-01\n"), &out)
	assert.ErrorIs(t, err, dualdate.ErrFormat)

	err = yaml.Unmarshal([]byte("starts_at: [2019]\n"), &out)
	assert.ErrorContains(t, err, "want scalar node")
}

func TestDecoders_UnsetDateLensesAgree(t *testing.T) {
	t.Parallel()

	decoders := map[string]func(*dualdate.Date) error{
		"text empty":       func(d *dualdate.Date) error { return d.UnmarshalText(nil) },
		"json null":        func(d *dualdate.Date) error { return d.UnmarshalJSON([]byte("null")) },
		"yaml null": func(d *dualdate.Date) error {
			return d.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
		},
		"sql nil":          func(d *dualdate.Date) error { return d.Scan(nil) },
		"timestamp null":   func(d *dualdate.Date) error { return d.ScanTimestamp(pgtype.Timestamp{}) },
		"timestamptz null": func(d *dualdate.Date) error { return d.ScanTimestamptz(pgtype.Timestamptz{}) },
		"proto nil": func(d *dualdate.Date) error {
			got, err := dualdate.FromTimestamp(nil)
			*d = got
			return err
		},
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := dualdate.FromLocal(fields(2019, time.January, 1, 0, 0, 0))
			require.NoError(t, decode(&d))
			assert.True(t, d.IsZero())
			requireAgreement(t, d)
		})
	}
}
