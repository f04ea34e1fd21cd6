package otp

import (
	"fmt"
	"net/url"
	"strings"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// KeyURIParams describes an otpauth:// provisioning URI.
type KeyURIParams struct {
	// Type selects totp or hotp. Default: totp
	Type Type
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Algorithm is the hash algorithm. Default: SHA1
	Algorithm Algorithm
	// Digits is the code length. Default: 6
	Digits uint
	// Period is the TOTP time step in seconds. Default: 30
	Period uint
	// Counter is the initial HOTP counter value.
	Counter uint64
}

// BuildKeyURI assembles the otpauth:// URI that authenticator apps scan to
// import a secret. The label is path-escaped and the query encoded with
// url.Values, so issuer and account name may contain arbitrary text.
func BuildKeyURI(p KeyURIParams) (string, error) {
	if p.Type == "" {
		p.Type = TypeTOTP
	}
	if p.Type != TypeTOTP && p.Type != TypeHOTP {
		return "", fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}
	if strings.TrimSpace(p.Secret) == "" {
		return "", fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(p.AccountName) == "" {
		return "", fmt.Errorf("%w: account name must not be empty", ErrInvalidConfig)
	}
	if p.Algorithm == "" {
		p.Algorithm = AlgorithmSHA1
	}
	if p.Digits == 0 {
		p.Digits = 6
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}

	v := url.Values{}
	v.Set("secret", p.Secret)
	v.Set("issuer", p.Issuer)
	v.Set("algorithm", string(p.Algorithm))
	v.Set("digits", fmt.Sprintf("%d", p.Digits))

	if p.Type == TypeTOTP {
		v.Set("period", fmt.Sprintf("%d", p.Period))
	} else {
		v.Set("counter", fmt.Sprintf("%d", p.Counter))
	}

	label := p.AccountName
	if p.Issuer != "" {
		label = fmt.Sprintf("%s:%s", p.Issuer, p.AccountName)
	}

	return fmt.Sprintf("otpauth://%s/%s?%s", p.Type, url.PathEscape(label), v.Encode()), nil
}

// BuildTOTPKeyURI assembles a TOTP provisioning URI with default algorithm,
// digits and period.
func BuildTOTPKeyURI(issuer, accountName, secretBase32 string) (string, error) {
	return BuildKeyURI(KeyURIParams{
		Issuer:      issuer,
		AccountName: accountName,
		Secret:      secretBase32,
	})
}
