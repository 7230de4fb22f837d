package pin

import (
	"crypto/subtle"

	"golang.org/x/crypto/sha3"
)

// Hasher turns a PIN into a fixed-size digest and compares two digests.
// The concrete algorithm is swappable; callers only rely on "same PIN,
// same digest" and whole-buffer equality.
type Hasher interface {
	Digest(pin string) []byte
	Equal(a, b []byte) bool
}

// SHA3Hasher derives SHA3-256 digests. The zero value is ready to use.
type SHA3Hasher struct{}

// Digest returns the 32-byte SHA3-256 digest of the PIN.
func (SHA3Hasher) Digest(pin string) []byte {
	sum := sha3.Sum256([]byte(pin))
	return sum[:]
}

// Equal reports whether two digests match, comparing every byte.
func (SHA3Hasher) Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Compile-time check: ensure SHA3Hasher implements Hasher
var _ Hasher = SHA3Hasher{}
