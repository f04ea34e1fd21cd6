package otp

import "errors"

var (
	// ErrInvalidSecretEncoding indicates the secret is not valid base32.
	ErrInvalidSecretEncoding = errors.New("otp: invalid base32 secret")

	// ErrInvalidSecretLength indicates a non-positive secret byte length was requested.
	ErrInvalidSecretLength = errors.New("otp: invalid secret length")

	// ErrInvalidDigits indicates the requested digit count is outside the supported range.
	ErrInvalidDigits = errors.New("otp: invalid digit count")

	// ErrInvalidPeriod indicates the time step is zero.
	ErrInvalidPeriod = errors.New("otp: invalid period")

	// ErrInvalidTime indicates the timestamp precedes the epoch start.
	ErrInvalidTime = errors.New("otp: time before epoch start")

	// ErrInvalidAlgorithm indicates an unsupported hash algorithm.
	ErrInvalidAlgorithm = errors.New("otp: invalid algorithm")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")

	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")

	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
