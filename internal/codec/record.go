package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"agentkey/internal/domain"
)

var (
	errMissingField = errors.New("required field missing")
	errTrailingData = errors.New("trailing data after record")
)

// EncodeRecord serialises full key material into a PersistedKeyRecord.
func EncodeRecord(m domain.KeyMaterial) ([]byte, error) {
	if len(m.Modulus) == 0 || len(m.Exponent) == 0 || !m.HasPrivate() {
		return nil, fmt.Errorf("encode record: %w", errMissingField)
	}
	return json.Marshal(domain.PersistedKeyRecord{
		Version:  domain.RecordVersion,
		Modulus:  m.Modulus,
		Exponent: m.Exponent,
		P:        m.P,
		Q:        m.Q,
		D:        m.D,
		DP:       m.DP,
		DQ:       m.DQ,
		InverseQ: m.InverseQ,
	})
}

// DecodeRecord parses b into key material. Any structural problem is reported
// as domain.ErrMalformedKeyRecord.
func DecodeRecord(b []byte) (domain.KeyMaterial, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var rec domain.PersistedKeyRecord
	if err := dec.Decode(&rec); err != nil {
		return domain.KeyMaterial{}, domain.MalformedError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.KeyMaterial{}, domain.MalformedError(errTrailingData)
	}
	if rec.Version != domain.RecordVersion {
		return domain.KeyMaterial{}, domain.MalformedError(
			fmt.Errorf("unsupported record version %d", rec.Version))
	}

	m := domain.KeyMaterial{
		Modulus:  rec.Modulus,
		Exponent: rec.Exponent,
		P:        rec.P,
		Q:        rec.Q,
		D:        rec.D,
		DP:       rec.DP,
		DQ:       rec.DQ,
		InverseQ: rec.InverseQ,
	}
	if len(m.Modulus) == 0 || len(m.Exponent) == 0 || !m.HasPrivate() {
		return domain.KeyMaterial{}, domain.MalformedError(errMissingField)
	}
	return m, nil
}
