package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"
)

// Algorithm represents the hash algorithm used for OTP generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm (RFC 4226 default).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// MaxDigits is the largest supported code length. 10^9 is the largest
// power of ten that fits the 31-bit dynamic truncation domain.
const MaxDigits = 9

// newHash returns the hash constructor for the algorithm.
func (a Algorithm) newHash() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1, "":
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, a)
	}
}

// decodeSecret decodes a base32 secret. Lower case input and missing
// padding are tolerated, matching what authenticator apps emit.
func decodeSecret(secretBase32 string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(secretBase32))
	if s == "" {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidSecretEncoding)
	}
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	key, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretEncoding, err)
	}
	return key, nil
}

// pow10 returns 10^digits. Callers validate digits <= MaxDigits first.
func pow10(digits uint) uint32 {
	mod := uint32(1)
	for i := uint(0); i < digits; i++ {
		mod *= 10
	}
	return mod
}

// GenerateHOTPRaw computes the RFC 4226 code for the given counter as a
// numeric value in [0, 10^digits).
//
// The counter is serialized as 8 bytes big-endian and authenticated with
// HMAC over the decoded secret. Dynamic truncation takes the low 4 bits of
// the final digest byte as an offset, extracts 4 bytes there, masks the top
// bit to keep the value in the 31-bit domain, and reduces modulo 10^digits.
func GenerateHOTPRaw(secretBase32 string, counter uint64, digits uint, algorithm Algorithm) (uint32, error) {
	if digits < 1 || digits > MaxDigits {
		return 0, fmt.Errorf("%w: digits must be between 1 and %d, got %d", ErrInvalidDigits, MaxDigits, digits)
	}

	newHash, err := algorithm.newHash()
	if err != nil {
		return 0, err
	}

	key, err := decodeSecret(secretBase32)
	if err != nil {
		return 0, err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := uint32(sum[offset]&0x7f)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])

	return value % pow10(digits), nil
}

// GenerateHOTP computes the RFC 4226 code for the given counter using
// HMAC-SHA1, formatted as a zero-padded decimal string of exactly digits
// characters.
func GenerateHOTP(secretBase32 string, counter uint64, digits uint) (string, error) {
	return GenerateHOTPWith(secretBase32, counter, digits, AlgorithmSHA1)
}

// GenerateHOTPWith is GenerateHOTP with an explicit hash algorithm.
func GenerateHOTPWith(secretBase32 string, counter uint64, digits uint, algorithm Algorithm) (string, error) {
	code, err := GenerateHOTPRaw(secretBase32, counter, digits, algorithm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", int(digits), code), nil
}
