// Package otp provides TOTP (RFC 6238) and HOTP (RFC 4226) code generation.
//
// TOTP (Time-based One-Time Password) generates codes that change every 30 seconds,
// commonly used with authenticator apps like Google Authenticator, Authy, etc.
//
// HOTP (HMAC-based One-Time Password) generates codes based on a counter value,
// used in hardware tokens and some mobile apps.
//
// # Raw Engine
//
// The package exposes the code computation directly for callers that manage
// their own counters and clocks:
//
//	// Counter-based code (RFC 4226)
//	code, err := otp.GenerateHOTP("JBSWY3DPEHPK3PXP", 0, 6)
//
//	// Time-based code for a specific timestamp (RFC 6238)
//	code, err = otp.GenerateTOTPAt("JBSWY3DPEHPK3PXP", 30, 0, 1388865600, 6)
//
//	// Time-based code for the current time
//	code, err = otp.GenerateTOTPNow("JBSWY3DPEHPK3PXP", 30, 0, 6)
//
// Each call computes exactly one counter's code. The step and epoch start
// (t0) arguments follow RFC 6238: counter = (unixTime - t0) / step.
//
// # Authenticator Example
//
// The Authenticator wraps the raw engine with configuration validation and a
// clock-skew tolerance window:
//
//	config := otp.Config{
//	    Type:        otp.TypeTOTP,
//	    Secret:      "JBSWY3DPEHPK3PXP",
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	    Digits:      6,
//	    Period:      30,
//	    Algorithm:   otp.AlgorithmSHA1,
//	    Skew:        1, // Allow 1 period of clock skew
//	}
//
//	auth, err := otp.NewAuthenticator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from user's authenticator app
//	err = auth.Authenticate(ctx, "123456")
//	if err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	}
//
//	// Generate provisioning URI for QR code
//	uri := auth.GetProvisioningURI()
//	// Display uri as QR code for user to scan
//
// # Secret Generation
//
// Generate a cryptographically random secret:
//
//	secret, err := otp.GenerateSecretBytes(20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use secret in Config.Secret
//
// Secrets are unpadded uppercase base32 (RFC 4648). Decoding tolerates lower
// case and missing padding.
//
// # Hash Algorithms
//
// The package supports multiple hash algorithms:
//   - AlgorithmSHA1 (default, widely supported)
//   - AlgorithmSHA256 (more secure)
//   - AlgorithmSHA512 (most secure)
//
// Note that not all authenticator apps support SHA256 and SHA512.
//
// # Thread Safety
//
// All functions are pure given their inputs and safe for concurrent use.
// The Authenticator type is safe for concurrent use; multiple goroutines
// can call its methods simultaneously.
//
// # Context Support
//
// Authentication methods accept a context.Context for cancellation
// and timeout support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	err := auth.Authenticate(ctx, code)
package otp
