package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedBytes is the size of a derived seed.
const SeedBytes = 64

const kdfRounds = 2048

// DeriveSeed stretches secret and salt into a SeedBytes-long key with
// PBKDF2-HMAC-SHA512.
func DeriveSeed(secret, salt []byte) []byte {
	return pbkdf2.Key(secret, salt, kdfRounds, SeedBytes, sha512.New)
}
