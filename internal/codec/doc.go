// Package codec converts key material to and from its persisted record form.
//
// The record is JSON with a fixed field order and base64 byte fields. It is
// the plaintext that the protector seals; the codec never touches disk.
package codec
