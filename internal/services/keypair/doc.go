// Package keypair manages the lifecycle of the host's RSA key pair.
//
// The Service composes a key generator, a machine-scoped protector and a key
// file store. The key file is either absent or holds protect(record); plain
// record bytes never reach the store. A key is generated only when the file
// is absent. A file that fails to decrypt or parse is an error, never a
// reason to regenerate, because other parties may already trust the old
// public key.
package keypair
