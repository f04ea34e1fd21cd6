package otp

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code (6, 7, or 8).
	// Default: 6
	Digits uint
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Counter specifies the initial counter value for HOTP.
	// Default: 0
	Counter uint64
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Skew specifies the number of time periods to check before and after
	// the current time for TOTP validation (tolerance for clock skew).
	// Default: 1
	Skew uint
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	if _, err := decodeSecret(c.Secret); err != nil {
		return fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}

	// Authenticator apps only accept 6, 7 or 8 digit codes, even though the
	// raw engine supports 1..9.
	if c.Digits != 0 && c.Digits != 6 && c.Digits != 7 && c.Digits != 8 {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidConfig)
	}

	if c.Algorithm != "" {
		if _, err := c.Algorithm.newHash(); err != nil {
			return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
		}
	}

	return nil
}

// Authenticator generates and validates OTP codes.
// It is safe for concurrent use.
type Authenticator struct {
	cfg Config
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = 6
	}
	if cfg.Period == 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
	}

	return &Authenticator{cfg: cfg}, nil
}

// codesEqual compares two codes in constant time.
func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		return a.authenticateTOTP(code, time.Now().UTC().Unix())
	}

	// HOTP validation using configured counter
	expected, err := GenerateHOTPWith(a.cfg.Secret, a.cfg.Counter, a.cfg.Digits, a.cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !codesEqual(code, expected) {
		return ErrInvalidCode
	}

	return nil
}

// authenticateTOTP checks the code against each counter within the
// configured skew window around unixTime.
func (a *Authenticator) authenticateTOTP(code string, unixTime int64) error {
	counter, err := totpCounter(uint64(a.cfg.Period), 0, unixTime)
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}

	skew := uint64(a.cfg.Skew)
	first := uint64(0)
	if counter > skew {
		first = counter - skew
	}

	for c := first; c <= counter+skew; c++ {
		expected, err := GenerateHOTPWith(a.cfg.Secret, c, a.cfg.Digits, a.cfg.Algorithm)
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if codesEqual(code, expected) {
			return nil
		}
	}

	return ErrInvalidCode
}

// ValidateCounter validates an HOTP code and returns the new counter value.
// This method is only valid for HOTP authenticators.
// The returned counter should be stored and used for the next validation.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	expected, err := GenerateHOTPWith(a.cfg.Secret, counter, a.cfg.Digits, a.cfg.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !codesEqual(code, expected) {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		code, err := GenerateTOTPAtWith(a.cfg.Secret, uint64(a.cfg.Period), 0,
			time.Now().UTC().Unix(), a.cfg.Digits, a.cfg.Algorithm)
		if err != nil {
			return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
		}
		return code, nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("otp: counter required for HOTP generation")
	}

	code, err := GenerateHOTPWith(a.cfg.Secret, counter[0], a.cfg.Digits, a.cfg.Algorithm)
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}

	return code, nil
}

// GenerateAt generates a TOTP code for the given Unix timestamp.
// This method is only valid for TOTP authenticators.
func (a *Authenticator) GenerateAt(unixTime int64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type != TypeTOTP {
		return "", fmt.Errorf("%w: GenerateAt is only valid for TOTP", ErrInvalidConfig)
	}

	code, err := GenerateTOTPAtWith(a.cfg.Secret, uint64(a.cfg.Period), 0,
		unixTime, a.cfg.Digits, a.cfg.Algorithm)
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
	}
	return code, nil
}

// GetProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
func (a *Authenticator) GetProvisioningURI() string {
	if a == nil {
		return ""
	}

	uri, err := BuildKeyURI(KeyURIParams{
		Type:        a.cfg.Type,
		Issuer:      a.cfg.Issuer,
		AccountName: a.cfg.AccountName,
		Secret:      a.cfg.Secret,
		Algorithm:   a.cfg.Algorithm,
		Digits:      a.cfg.Digits,
		Period:      a.cfg.Period,
		Counter:     a.cfg.Counter,
	})
	if err != nil {
		return ""
	}
	return uri
}
