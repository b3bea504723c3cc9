// Package crypto exposes the minimal primitives used by keyphrase.
//
// Contents
//
//   - Cryptographically secure random bytes (RandomBytes)
//   - The first byte of a SHA-256 digest, used as checksum material
//     (ChecksumByte)
//   - PBKDF2 seed derivation (DeriveSeed)
//
// # Notes
//
// The codec in internal/phrase treats these as opaque collaborators: it
// asks for N random bytes, for one digest byte, and for a derived key.
// Everything else about the primitives is pinned here so the codec never
// depends on hash or KDF details.
package crypto
