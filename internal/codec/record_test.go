package codec_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"agentkey/internal/codec"
	"agentkey/internal/domain"
)

func sampleMaterial() domain.KeyMaterial {
	return domain.KeyMaterial{
		Modulus:  []byte{0xc3, 0x01, 0x02, 0x03},
		Exponent: []byte{0x01, 0x00, 0x01},
		P:        []byte{0x0b},
		Q:        []byte{0x0d},
		D:        []byte{0x00, 0x07},
		DP:       []byte{0x03},
		DQ:       []byte{0x05},
		InverseQ: []byte{0x09},
	}
}

func TestRecord_RoundTripPreservesBytes(t *testing.T) {
	m := sampleMaterial()

	raw, err := codec.EncodeRecord(m)
	require.NoError(t, err)

	got, err := codec.DecodeRecord(raw)
	require.NoError(t, err)
	require.True(t, m.Equal(got), "fields differ after round trip")
	// Leading zero bytes survive.
	require.Equal(t, []byte{0x00, 0x07}, got.D)
}

func TestRecord_FieldOrderAndVersion(t *testing.T) {
	raw, err := codec.EncodeRecord(sampleMaterial())
	require.NoError(t, err)

	s := string(raw)
	require.True(t, strings.HasPrefix(s, `{"version":1,"modulus":`), s)
	order := []string{`"modulus"`, `"exponent"`, `"p"`, `"q"`, `"d"`, `"dp"`, `"dq"`, `"inverseQ"`}
	last := -1
	for _, field := range order {
		i := strings.Index(s, field)
		require.Greater(t, i, last, "field %s out of order", field)
		last = i
	}
}

func TestEncodeRecord_RequiresFullMaterial(t *testing.T) {
	_, err := codec.EncodeRecord(sampleMaterial().Public())
	require.Error(t, err)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	valid, err := codec.EncodeRecord(sampleMaterial())
	require.NoError(t, err)

	withVersion := func(v int) []byte {
		var rec domain.PersistedKeyRecord
		require.NoError(t, json.Unmarshal(valid, &rec))
		rec.Version = v
		b, err := json.Marshal(rec)
		require.NoError(t, err)
		return b
	}
	withoutQ := func() []byte {
		var rec domain.PersistedKeyRecord
		require.NoError(t, json.Unmarshal(valid, &rec))
		rec.Q = nil
		b, err := json.Marshal(rec)
		require.NoError(t, err)
		return b
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"not json", []byte("\x00\x01binary")},
		{"null", []byte("null")},
		{"truncated", valid[:len(valid)/2]},
		{"trailing data", append(append([]byte(nil), valid...), []byte(`{}`)...)},
		{"unknown field", []byte(`{"version":1,"extra":"AA=="}`)},
		{"bad base64", []byte(`{"version":1,"modulus":"***"}`)},
		{"future version", withVersion(2)},
		{"missing version", withVersion(0)},
		{"missing factor", withoutQ()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeRecord(tt.in)
			require.ErrorIs(t, err, domain.ErrMalformedKeyRecord)
		})
	}
}
