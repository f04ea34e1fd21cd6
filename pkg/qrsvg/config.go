package qrsvg

import (
	"fmt"
	"regexp"
	"strings"
)

// ECLevel represents the QR error-correction level, trading payload
// capacity for resilience to damage and misreads.
type ECLevel int

const (
	// ECLevelLow recovers from ~7% damage.
	ECLevelLow ECLevel = iota
	// ECLevelMedium recovers from ~15% damage (default).
	ECLevelMedium
	// ECLevelQuartile recovers from ~25% damage.
	ECLevelQuartile
	// ECLevelHigh recovers from ~30% damage.
	ECLevelHigh
)

// String returns the conventional single-letter level name.
func (l ECLevel) String() string {
	switch l {
	case ECLevelLow:
		return "L"
	case ECLevelMedium:
		return "M"
	case ECLevelQuartile:
		return "Q"
	case ECLevelHigh:
		return "H"
	default:
		return fmt.Sprintf("ECLevel(%d)", int(l))
	}
}

// VersionAuto lets the encoder pick the smallest QR version that fits the
// payload.
const VersionAuto = 0

// maxVersion is the largest QR version defined by the symbology.
const maxVersion = 40

// Defaults applied by withDefaults.
const (
	DefaultDarkColor    = "#000000"
	DefaultLightColor   = "#ffffff"
	DefaultMinDimension = 256
)

// hexColorPattern matches #rgb and #rrggbb color tokens.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds TOTP QR rendering configuration. It is a plain value
// object; validate with Validate before rendering.
type Config struct {
	// AccountName is the account identifier embedded in the provisioning
	// URI (e.g., "user@example.com"). Required.
	AccountName string
	// Issuer is the issuing organization, used as the URI label prefix.
	Issuer string
	// DarkColor fills dark modules (e.g., "#000000").
	// Default: #000000
	DarkColor string
	// LightColor fills the background (e.g., "#ffffff").
	// Default: #ffffff
	LightColor string
	// MinDimension is the minimum rendered width/height in pixels. The
	// canvas is rounded up to a whole number of modules, never down.
	// Default: 256
	MinDimension int
	// Version caps the QR version (1-40). VersionAuto (0) lets the encoder
	// pick the smallest version that fits.
	Version int
	// ECLevel selects the error-correction level.
	// Default: ECLevelMedium
	ECLevel ECLevel
}

// withDefaults fills unset fields with default values.
func (c Config) withDefaults() Config {
	if c.DarkColor == "" {
		c.DarkColor = DefaultDarkColor
	}
	if c.LightColor == "" {
		c.LightColor = DefaultLightColor
	}
	if c.MinDimension == 0 {
		c.MinDimension = DefaultMinDimension
	}
	return c
}

// Validate checks that the configuration is valid. Colors and geometry are
// rejected here, eagerly, rather than during rendering.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AccountName) == "" {
		return fmt.Errorf("%w: account name must not be empty", ErrInvalidConfig)
	}
	if !hexColorPattern.MatchString(c.DarkColor) {
		return fmt.Errorf("%w: dark color %q is not a hex color token", ErrInvalidConfig, c.DarkColor)
	}
	if !hexColorPattern.MatchString(c.LightColor) {
		return fmt.Errorf("%w: light color %q is not a hex color token", ErrInvalidConfig, c.LightColor)
	}
	if c.MinDimension <= 0 {
		return fmt.Errorf("%w: min dimension must be positive, got %d", ErrInvalidConfig, c.MinDimension)
	}
	if c.Version < VersionAuto || c.Version > maxVersion {
		return fmt.Errorf("%w: version must be 0 (auto) or 1-%d, got %d", ErrInvalidConfig, maxVersion, c.Version)
	}
	if c.ECLevel < ECLevelLow || c.ECLevel > ECLevelHigh {
		return fmt.Errorf("%w: unknown error-correction level %d", ErrInvalidConfig, int(c.ECLevel))
	}
	return nil
}
