package otp

import (
	"fmt"
	"time"
)

// DefaultPeriod is the TOTP time step used by authenticator apps.
const DefaultPeriod = 30

// totpCounter derives the RFC 6238 counter from a timestamp, step size and
// epoch start. Timestamps before t0 (including pre-epoch times) are
// rejected rather than wrapped.
func totpCounter(step, t0 uint64, unixTime int64) (uint64, error) {
	if step == 0 {
		return 0, fmt.Errorf("%w: step must be greater than zero", ErrInvalidPeriod)
	}
	if unixTime < 0 || uint64(unixTime) < t0 {
		return 0, fmt.Errorf("%w: timestamp %d precedes epoch start %d", ErrInvalidTime, unixTime, t0)
	}
	return (uint64(unixTime) - t0) / step, nil
}

// GenerateTOTPAt computes the RFC 6238 code for the given Unix timestamp
// using HMAC-SHA1. step is the time step in seconds (usually 30) and t0 the
// epoch start (usually 0); the counter is (unixTime - t0) / step.
//
// Exactly one counter's code is computed per call. A code generated just
// before a step boundary differs from one generated just after it; callers
// wanting a tolerance window must check adjacent counters themselves, as
// Authenticator does with its Skew setting.
func GenerateTOTPAt(secretBase32 string, step, t0 uint64, unixTime int64, digits uint) (string, error) {
	return GenerateTOTPAtWith(secretBase32, step, t0, unixTime, digits, AlgorithmSHA1)
}

// GenerateTOTPAtWith is GenerateTOTPAt with an explicit hash algorithm.
func GenerateTOTPAtWith(secretBase32 string, step, t0 uint64, unixTime int64, digits uint, algorithm Algorithm) (string, error) {
	counter, err := totpCounter(step, t0, unixTime)
	if err != nil {
		return "", err
	}
	return GenerateHOTPWith(secretBase32, counter, digits, algorithm)
}

// GenerateTOTPNow computes the RFC 6238 code for the current wall-clock time.
func GenerateTOTPNow(secretBase32 string, step, t0 uint64, digits uint) (string, error) {
	return GenerateTOTPAt(secretBase32, step, t0, time.Now().Unix(), digits)
}
