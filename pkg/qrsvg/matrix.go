package qrsvg

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Matrix is a square grid of QR modules. true marks a dark module.
// It is immutable once produced by a provider.
type Matrix [][]bool

// Side returns the module count per axis.
func (m Matrix) Side() int {
	return len(m)
}

// Dark reports whether the module at column x, row y is dark.
func (m Matrix) Dark(x, y int) bool {
	return m[y][x]
}

// MatrixProvider produces a QR module matrix for a payload. version is a
// cap on the QR version (VersionAuto for no cap).
type MatrixProvider interface {
	Encode(payload string, version int, level ECLevel) (Matrix, error)
}

// DefaultProvider encodes payloads with the go-qrcode library. The quiet
// zone is omitted so the matrix side is exactly 17 + 4*version modules.
type DefaultProvider struct{}

// Ensure DefaultProvider implements MatrixProvider interface
var _ MatrixProvider = (*DefaultProvider)(nil)

// Encode implements the MatrixProvider interface. The encoder always picks
// the smallest version that fits the payload; a fixed version therefore
// acts as a cap, and a payload forcing a larger symbol is rejected with
// ErrPayloadTooLarge.
func (p *DefaultProvider) Encode(payload string, version int, level ECLevel) (Matrix, error) {
	code, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	code.DisableBorder = true

	if version != VersionAuto && code.VersionNumber > version {
		return nil, fmt.Errorf("%w: payload needs version %d, configured %d",
			ErrPayloadTooLarge, code.VersionNumber, version)
	}

	return Matrix(code.Bitmap()), nil
}

// recoveryLevel maps an ECLevel to the encoder's constants.
func recoveryLevel(l ECLevel) qrcode.RecoveryLevel {
	switch l {
	case ECLevelLow:
		return qrcode.Low
	case ECLevelQuartile:
		return qrcode.High
	case ECLevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
