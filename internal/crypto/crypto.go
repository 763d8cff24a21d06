// Package crypto encrypts short values into URL-safe tokens.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrInvalidToken indicates a token that cannot be decoded or authenticated.
var ErrInvalidToken = errors.New("crypto: invalid token")

// keyInfo binds derived keys to their use.
const keyInfo = "quarx url token v1"

// Encrypter seals plaintext into tokens and opens them again.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

// Sealer is an AES-256-GCM Encrypter. Tokens are nonce || ciphertext encoded
// as unpadded base64url so they can be used as a single path segment.
type Sealer struct {
	aead cipher.AEAD
}

// New derives an AES-256 key from appKey and returns a Sealer.
func New(appKey string) (*Sealer, error) {
	if appKey == "" {
		return nil, fmt.Errorf("app key required")
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(appKey), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce.
func (s *Sealer) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	payload := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decrypt opens a token produced by Encrypt under the same app key.
func (s *Sealer) Decrypt(token string) (string, error) {
	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(payload) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("%w: too short", ErrInvalidToken)
	}

	plaintext, err := s.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return string(plaintext), nil
}
