package int64be

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

const (
	// IVLength is the length of the initialization vector for AES-GCM (96 bits).
	IVLength = 12

	// PayloadLength is the total length of an encrypted payload: IV + ciphertext + tag.
	PayloadLength = IVLength + Size + 16 // 36 bytes total
)

// EncryptedInt64 is an authenticated encrypted wrapper for an Int64, for
// interchange where the raw 64-bit value must stay opaque.
// Payload layout: 12-byte IV ‖ 8-byte ciphertext ‖ 16-byte GCM tag (36 bytes).
type EncryptedInt64 struct {
	// ID is the decrypted original value.
	ID Int64

	// The raw encrypted payload (IV ‖ cipher+tag).
	payload []byte
}

// ToEncryptedHex returns the 36-byte payload as 72 lowercase hex chars.
func (e EncryptedInt64) ToEncryptedHex() string {
	return Hex.FromBytes(e.payload)
}

// ToEncryptedBytes returns a defensive copy of the raw payload bytes.
func (e EncryptedInt64) ToEncryptedBytes() []byte {
	out := make([]byte, len(e.payload))
	copy(out, e.payload)
	return out
}

// EncryptionConfig holds the AEAD used to seal and open Int64 payloads.
type EncryptionConfig struct {
	gcm cipher.AEAD
}

// NewEncryptionConfig builds a configuration from an AES key.
// The aesKey must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256
// respectively.
func NewEncryptionConfig(aesKey []byte) (*EncryptionConfig, error) {
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &EncryptionConfig{gcm: gcm}, nil
}

// Encrypt seals the 8-byte encoding of v under a fresh 96-bit random IV.
func (c *EncryptionConfig) Encrypt(v Int64) (*EncryptedInt64, error) {
	iv := make([]byte, IVLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	ciphertext := c.gcm.Seal(nil, iv, v.ToBuffer(false), nil)
	if len(ciphertext) != Size+16 {
		return nil, fmt.Errorf("unexpected AES-GCM output length: %d", len(ciphertext))
	}

	payload := make([]byte, PayloadLength)
	copy(payload, iv)
	copy(payload[IVLength:], ciphertext)

	return &EncryptedInt64{ID: v, payload: payload}, nil
}

// FromEncryptedBytes authenticates and decrypts a raw 36-byte payload.
func (c *EncryptionConfig) FromEncryptedBytes(b []byte) (*EncryptedInt64, error) {
	if len(b) != PayloadLength {
		return nil, fmt.Errorf("encrypted payload must be %d bytes, got %d", PayloadLength, len(b))
	}

	plaintext, err := c.gcm.Open(nil, b[:IVLength], b[IVLength:], nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	id, err := FromBytes(plaintext)
	if err != nil {
		return nil, fmt.Errorf("decryption yielded invalid plaintext: %w", err)
	}

	payload := make([]byte, len(b))
	copy(payload, b)

	return &EncryptedInt64{ID: id, payload: payload}, nil
}

// FromEncryptedHex authenticates and decrypts a 72-char hex payload.
func (c *EncryptionConfig) FromEncryptedHex(encHex string) (*EncryptedInt64, error) {
	b, err := Hex.ToBytes(encHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}

	if len(b) != PayloadLength {
		return nil, fmt.Errorf("encrypted payload must be %d bytes, got %d", PayloadLength, len(b))
	}

	return c.FromEncryptedBytes(b)
}
