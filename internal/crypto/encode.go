package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
)

// PublicKeyPEM returns the PKIX PEM encoding of pub.
func PublicKeyPEM(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
