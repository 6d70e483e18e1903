package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// DefaultKeySize is the number of random bytes (256 bit)
// in keys generated by [RandomKeyGenerator].
const DefaultKeySize = 32

var ErrKeySizeTooSmall = errors.New("key size must be at least 16 bytes")

// RandomKeyGenerator generates base64url encoded keys
// from crypto/rand.
type RandomKeyGenerator struct {
	size   int
	reader io.Reader
}

func NewRandomKeyGenerator(size int) (*RandomKeyGenerator, error) {
	if size < 16 {
		return nil, ErrKeySizeTooSmall
	}
	return &RandomKeyGenerator{
		size:   size,
		reader: rand.Reader,
	}, nil
}

// DefaultKeyGenerator returns a [RandomKeyGenerator] of [DefaultKeySize].
func DefaultKeyGenerator() *RandomKeyGenerator {
	return &RandomKeyGenerator{
		size:   DefaultKeySize,
		reader: rand.Reader,
	}
}

func (g *RandomKeyGenerator) GenerateKey() (string, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(g.reader, b); err != nil {
		return "", fmt.Errorf("crypto: read random key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UUIDKeyGenerator generates random (version 4) UUIDs.
type UUIDKeyGenerator struct{}

func (UUIDKeyGenerator) GenerateKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("crypto: generate uuid: %w", err)
	}
	return id.String(), nil
}
