package crypto_test

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	agentcrypto "agentkey/internal/crypto"
	"agentkey/internal/domain"
)

var (
	keyOnce sync.Once
	testKey *rsa.PrivateKey
	keyErr  error
)

func sharedKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	keyOnce.Do(func() { testKey, keyErr = agentcrypto.GenerateRSA() })
	require.NoError(t, keyErr)
	return testKey
}

func TestGenerateRSA_KeyStrength(t *testing.T) {
	key := sharedKey(t)
	require.Equal(t, agentcrypto.KeyBits, key.N.BitLen())

	m, err := agentcrypto.MaterialFromKey(key)
	require.NoError(t, err)
	require.Equal(t, 2048, m.BitLen())
	require.True(t, m.HasPrivate())
}

func TestRSAGenerator_ImplementsKeyGenerator(t *testing.T) {
	var gen domain.KeyGenerator = agentcrypto.RSAGenerator{}
	key, err := gen.GenerateKeyPair()
	require.NoError(t, err)
	require.Equal(t, 2048, key.N.BitLen())
}

func TestMaterial_RoundTrip(t *testing.T) {
	key := sharedKey(t)
	m, err := agentcrypto.MaterialFromKey(key)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, m.Exponent)

	rebuilt, err := agentcrypto.KeyFromMaterial(m)
	require.NoError(t, err)
	require.True(t, key.Equal(rebuilt))

	again, err := agentcrypto.MaterialFromKey(rebuilt)
	require.NoError(t, err)
	require.True(t, m.Equal(again))
}

func TestKeyFromMaterial_SupportsPrivateOperations(t *testing.T) {
	m, err := agentcrypto.MaterialFromKey(sharedKey(t))
	require.NoError(t, err)
	key, err := agentcrypto.KeyFromMaterial(m)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("agent session"))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	require.NoError(t, err)
	require.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, digest[:], sig))

	ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, &key.PublicKey, []byte("secret"), nil)
	require.NoError(t, err)
	pt, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, key, ct, nil)
	require.NoError(t, err)
	require.Equal(t, "secret", string(pt))
}

func TestKeyFromMaterial_Rejects(t *testing.T) {
	base, err := agentcrypto.MaterialFromKey(sharedKey(t))
	require.NoError(t, err)

	bump := func(b []byte) []byte {
		return new(big.Int).Add(new(big.Int).SetBytes(b), big.NewInt(2)).Bytes()
	}

	tests := []struct {
		name   string
		mutate func(m *domain.KeyMaterial)
	}{
		{"public only", func(m *domain.KeyMaterial) { *m = m.Public() }},
		{"missing modulus", func(m *domain.KeyMaterial) { m.Modulus = nil }},
		{"exponent too large", func(m *domain.KeyMaterial) { m.Exponent = make([]byte, 9); m.Exponent[0] = 1 }},
		{"wrong D", func(m *domain.KeyMaterial) { m.D = bump(m.D) }},
		{"wrong DP", func(m *domain.KeyMaterial) { m.DP = bump(m.DP) }},
		{"wrong InverseQ", func(m *domain.KeyMaterial) { m.InverseQ = bump(m.InverseQ) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			_, err := agentcrypto.KeyFromMaterial(m)
			require.Error(t, err)
		})
	}
}

func TestFingerprint_StableAndShort(t *testing.T) {
	key := sharedKey(t)
	fp := agentcrypto.Fingerprint(&key.PublicKey)
	require.Len(t, fp, 20)
	require.Equal(t, fp, agentcrypto.Fingerprint(&key.PublicKey))
}

func TestPublicKeyPEM(t *testing.T) {
	key := sharedKey(t)
	b, err := agentcrypto.PublicKeyPEM(&key.PublicKey)
	require.NoError(t, err)
	require.Contains(t, string(b), "-----BEGIN PUBLIC KEY-----")
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	agentcrypto.Wipe(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
	agentcrypto.Wipe(nil)
}
