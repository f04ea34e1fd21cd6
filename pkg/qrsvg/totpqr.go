package qrsvg

import (
	"github.com/jeremyhahn/go-totpqr/pkg/otp"
)

// defaultProvider is shared by all TOTPQRSVG calls. It is stateless.
var defaultProvider MatrixProvider = &DefaultProvider{}

// TOTPQRSVG renders the provisioning QR code for a TOTP secret as an SVG
// document. The payload is the otpauth:// URI built from the secret and
// the config's issuer and account name.
func TOTPQRSVG(secretBase32 string, cfg Config) (string, error) {
	return TOTPQRSVGWith(defaultProvider, secretBase32, cfg)
}

// TOTPQRSVGWith is TOTPQRSVG with an explicit matrix provider, allowing
// callers to substitute their own QR encoder.
func TOTPQRSVGWith(provider MatrixProvider, secretBase32 string, cfg Config) (string, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	uri, err := otp.BuildTOTPKeyURI(cfg.Issuer, cfg.AccountName, secretBase32)
	if err != nil {
		return "", err
	}

	m, err := provider.Encode(uri, cfg.Version, cfg.ECLevel)
	if err != nil {
		return "", err
	}

	return RenderSVG(m, cfg), nil
}
