package qrsvg

import "errors"

var (
	// ErrInvalidConfig indicates the rendering configuration is invalid.
	ErrInvalidConfig = errors.New("qrsvg: invalid configuration")

	// ErrPayloadTooLarge indicates the payload does not fit the configured
	// QR version and error-correction level.
	ErrPayloadTooLarge = errors.New("qrsvg: payload too large for configured version")

	// ErrEncodeFailed indicates the QR encoder rejected the payload.
	ErrEncodeFailed = errors.New("qrsvg: qr encoding failed")
)
