package types

// RecordVersion is the current PersistedKeyRecord layout.
const RecordVersion = 1

// PersistedKeyRecord is the transportable form of KeyMaterial. It is the
// plaintext handed to the protector before anything is written to disk.
// Field order is fixed; byte fields encode as base64.
type PersistedKeyRecord struct {
	Version  int    `json:"version"`
	Modulus  []byte `json:"modulus"`
	Exponent []byte `json:"exponent"`
	P        []byte `json:"p"`
	Q        []byte `json:"q"`
	D        []byte `json:"d"`
	DP       []byte `json:"dp"`
	DQ       []byte `json:"dq"`
	InverseQ []byte `json:"inverseQ"`
}
