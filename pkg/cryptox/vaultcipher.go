// Package cryptox provides the at-rest encryption used by the credential
// vault. Values are sealed with AES-256-GCM under a key derived from
// locally-held key material with Argon2id.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the vault key from key material.
// Low iteration count is fine here: the input is high-entropy key material,
// not a human password.
const (
	kdfIterations  = 1
	kdfMemory      = 64 * 1024
	kdfParallelism = 4
	keyLength      = 32
)

// vaultKeySalt is a fixed domain-separation salt. The key material itself is
// the secret; the salt only keeps the derived key distinct from any other use
// of the same material.
var vaultKeySalt = []byte("eprometna-vault-v1")

var ErrCiphertextTooShort = errors.New("cryptox: ciphertext too short")

// ValueCipher seals and opens individual vault values.
type ValueCipher struct {
	aead cipher.AEAD
}

// NewValueCipher derives an AES-256-GCM cipher from raw key material.
func NewValueCipher(keyMaterial []byte) (*ValueCipher, error) {
	if len(keyMaterial) == 0 {
		return nil, errors.New("cryptox: empty key material")
	}

	key := argon2.IDKey(keyMaterial, vaultKeySalt, kdfIterations, kdfMemory, kdfParallelism, keyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &ValueCipher{aead: aead}, nil
}

// NewValueCipherFromFile loads key material from path. If the file does not
// exist, fresh random key material is generated and written with 0600
// permissions so the vault survives restarts.
func NewValueCipherFromFile(path string) (*ValueCipher, error) {
	material, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		material = make([]byte, 32)
		if _, err := rand.Read(material); err != nil {
			return nil, fmt.Errorf("failed to generate key material: %w", err)
		}
		if err := os.WriteFile(path, material, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write key material: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read key material: %w", err)
	}

	return NewValueCipher(material)
}

// Seal encrypts and authenticates plaintext.
// The output format is: [12-byte nonce][encrypted data][16-byte auth tag]
func (c *ValueCipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the ciphertext and auth tag to nonce
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal.
func (c *ValueCipher) Open(sealed []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
