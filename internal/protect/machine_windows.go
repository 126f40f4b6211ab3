//go:build windows

package protect

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"agentkey/internal/crypto"
	"agentkey/internal/domain"
)

// dpapiEntropy separates agentkey blobs from other local-machine DPAPI users.
var dpapiEntropy = []byte("agentkey|machine-scope|v1")

// DPAPI protects data with CryptProtectData in local-machine mode.
type DPAPI struct{}

// NewMachineScope returns the DPAPI protector. Options are not used.
func NewMachineScope(Options) (domain.Protector, error) { return DPAPI{}, nil }

// Scheme names the backing mechanism.
func (DPAPI) Scheme() string { return "dpapi local-machine" }

// Protect encrypts plaintext for any process on this machine.
func (DPAPI) Protect(plaintext []byte) ([]byte, error) {
	var out windows.DataBlob
	err := windows.CryptProtectData(
		newBlob(plaintext), nil, newBlob(dpapiEntropy), 0, nil,
		windows.CRYPTPROTECT_LOCAL_MACHINE|windows.CRYPTPROTECT_UI_FORBIDDEN,
		&out,
	)
	if err != nil {
		return nil, err
	}
	return takeBlob(&out), nil
}

// Unprotect decrypts a blob protected on this machine.
func (DPAPI) Unprotect(blob []byte) ([]byte, error) {
	var out windows.DataBlob
	err := windows.CryptUnprotectData(
		newBlob(blob), nil, newBlob(dpapiEntropy), 0, nil,
		windows.CRYPTPROTECT_UI_FORBIDDEN,
		&out,
	)
	if err != nil {
		return nil, domain.CryptoError(err)
	}
	return takeBlob(&out), nil
}

func newBlob(b []byte) *windows.DataBlob {
	if len(b) == 0 {
		return &windows.DataBlob{}
	}
	return &windows.DataBlob{Size: uint32(len(b)), Data: &b[0]}
}

// takeBlob copies a DPAPI result into Go memory and frees the original.
func takeBlob(b *windows.DataBlob) []byte {
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(b.Data)))
	src := unsafe.Slice(b.Data, b.Size)
	out := make([]byte, len(src))
	copy(out, src)
	crypto.Wipe(src)
	return out
}

// Compile-time assertion that DPAPI implements domain.Protector.
var _ domain.Protector = DPAPI{}
