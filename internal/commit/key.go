package commit

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// KeySize is the length of a commitment key in bytes (256 bits).
const KeySize = 32

var (
	// ErrEntropy means the secure random source could not produce key material.
	// Without it the fairness guarantee cannot hold, so callers treat it as fatal.
	ErrEntropy = errors.New("secure random source unavailable")

	// ErrInvalidKey is returned by ParseKey for malformed key text.
	ErrInvalidKey = errors.New("invalid commitment key")
)

// Key is a secret commitment key.
type Key [KeySize]byte

// String returns the key as 64 lowercase hex characters.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// ParseKey decodes a key from its hex form.
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != hex.EncodedLen(KeySize) {
		return k, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidKey, hex.EncodedLen(KeySize), len(s))
	}
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return k, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return k, nil
}

// KeySource produces fresh commitment keys.
type KeySource interface {
	GenerateKey() (Key, error)
}

// CryptoKeySource draws keys from a cryptographically secure reader.
type CryptoKeySource struct {
	reader io.Reader
}

// NewCryptoKeySource returns a key source backed by crypto/rand.
func NewCryptoKeySource() *CryptoKeySource {
	return &CryptoKeySource{reader: rand.Reader}
}

// NewCryptoKeySourceFromReader is for tests that need to control or break the
// entropy source. r must be a secure source in production.
func NewCryptoKeySourceFromReader(r io.Reader) *CryptoKeySource {
	return &CryptoKeySource{reader: r}
}

// GenerateKey reads KeySize bytes from the underlying source.
func (s *CryptoKeySource) GenerateKey() (Key, error) {
	var k Key
	if _, err := io.ReadFull(s.reader, k[:]); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return k, nil
}
