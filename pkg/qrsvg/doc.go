// Package qrsvg renders TOTP provisioning QR codes as SVG documents.
//
// The package walks a QR module matrix and emits a self-contained SVG
// string with configurable module colors and a minimum rendered dimension.
// QR encoding itself is delegated to a MatrixProvider; the default
// provider wraps the go-qrcode library.
//
// # Example
//
// Render the QR code for a freshly generated secret:
//
//	secret, err := otp.GenerateSecretBytes(20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svg, err := qrsvg.TOTPQRSVG(secret, qrsvg.Config{
//	    AccountName:  "user@example.com",
//	    Issuer:       "MyApp",
//	    DarkColor:    "#000080",
//	    LightColor:   "#ffffcc",
//	    MinDimension: 250,
//	    ECLevel:      qrsvg.ECLevelMedium,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// svg is a complete document; writing it to disk is the caller's job.
//
// # Geometry
//
// The per-module pixel size is MinDimension divided by the matrix side,
// rounded up, so the rendered canvas is always at least MinDimension on
// both axes and always a whole multiple of the module size.
//
// # Determinism
//
// Rendering is pure: identical secret, config and matrix produce
// byte-identical output, which keeps snapshot tests stable.
//
// # Versions
//
// The default provider lets the encoder pick the smallest QR version that
// fits the payload. Setting Config.Version caps the version instead; a
// payload that would force a larger symbol is rejected with
// ErrPayloadTooLarge, and choosing a larger version (or a lower
// error-correction level) is the caller's decision.
package qrsvg
