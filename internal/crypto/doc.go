// Package crypto exposes the RSA helpers used by agentkey.
//
// Contents
//
//   - 2048-bit RSA key generation (GenerateRSA, RSAGenerator)
//   - Conversion between *rsa.PrivateKey and domain.KeyMaterial
//     (MaterialFromKey, KeyFromMaterial)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - PEM encoding of the public key (PublicKeyPEM)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Key strength is fixed at KeyBits and is not configurable. KeyFromMaterial
// rejects material whose CRT values do not match the primes, so a record that
// decrypts but was assembled from mismatched fields never yields a usable key.
package crypto
