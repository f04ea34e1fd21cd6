package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// GenerateSecretBytes generates a cryptographically random secret key of
// the given raw byte length. The secret is returned as an unpadded base32
// string suitable for provisioning URIs and the Config.Secret field.
func GenerateSecretBytes(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", fmt.Errorf("%w: byte length must be greater than zero, got %d", ErrInvalidSecretLength, byteLength)
	}

	secret := make([]byte, byteLength)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// GenerateSecret generates a 20 byte (160 bit) secret, the RFC 4226
// recommended length.
func GenerateSecret() (string, error) {
	return GenerateSecretBytes(20)
}
