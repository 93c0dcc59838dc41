// Package vault seals secret phrases before they are written to the database.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for local wallet
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) works on phones and desktops alike while
	// keeping brute force expensive. N is written into every sealed value so it
	// can be tuned without breaking existing rows.
	DefaultScryptN = 1 << 18
	scryptR        = 8
	scryptP        = 1
	scryptKeyLen   = 32
	saltLen        = 32
	nonceLen       = 12

	sealedPrefix = "cwt1"
	sealedSep    = "$"
)

var (
	// ErrNotSealed is returned when opening a value that was not produced by Seal
	ErrNotSealed = errors.New("value is not sealed")
	// ErrInvalidPassword is returned when the ciphertext cannot be authenticated
	ErrInvalidPassword = errors.New("invalid password")
)

// Sealer protects secret text at rest
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// Plain stores secrets as-is
type Plain struct{}

func (Plain) Seal(plaintext string) (string, error) { return plaintext, nil }
func (Plain) Open(sealed string) (string, error) { return sealed, nil }

// PasswordSealer encrypts secrets with a password derived key (scrypt + AES-GCM)
type PasswordSealer struct {
	password []byte
	n        int
}

// NewPasswordSealer creates a sealer for the given password.
// The password is copied; caller should zero its own slice after use.
func NewPasswordSealer(password []byte, scryptN int) (*PasswordSealer, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	if scryptN <= 1 || scryptN&(scryptN-1) != 0 {
		return nil, fmt.Errorf("scrypt N must be a power of two greater than 1, got %d", scryptN)
	}
	p := make([]byte, len(password))
	copy(p, password)
	return &PasswordSealer{password: p, n: scryptN}, nil
}

// Seal encrypts plaintext with a fresh salt and nonce
func (s *PasswordSealer) Seal(plaintext string) (string, error) {
	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := s.newGCM(salt, s.n)
	if err != nil {
		return "", err
	}

	data := []byte(plaintext)
	defer clear(data)
	ciphertext := aesGCM.Seal(nil, nonce, data, nil)

	return strings.Join([]string{
		sealedPrefix,
		strconv.Itoa(s.n),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, sealedSep), nil
}

// Open decrypts a value produced by Seal
func (s *PasswordSealer) Open(sealed string) (string, error) {
	parts := strings.Split(sealed, sealedSep)
	if len(parts) != 5 || parts[0] != sealedPrefix {
		return "", ErrNotSealed
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode scrypt N: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return "", fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := s.newGCM(salt, n)
	if err != nil {
		return "", err
	}

	if len(nonce) != aesGCM.NonceSize() {
		return "", fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidPassword
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	return string(plaintext), nil
}

func (s *PasswordSealer) newGCM(salt []byte, n int) (cipher.AEAD, error) {
	// Derive key from password
	key, err := scrypt.Key(s.password, salt, n, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
