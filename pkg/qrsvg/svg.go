package qrsvg

import (
	"fmt"
	"strings"
)

// moduleSize returns the per-module pixel size: minDimension divided by the
// matrix side, rounded up so the canvas never comes out smaller than
// requested, and never below 1.
func moduleSize(minDimension, side int) int {
	if side <= 0 {
		return 1
	}
	size := (minDimension + side - 1) / side
	if size < 1 {
		size = 1
	}
	return size
}

// RenderSVG serializes a module matrix as a self-contained SVG document: a
// background rectangle in the light color and one filled rectangle per dark
// module. Identical inputs produce byte-identical output.
//
// The config must already carry valid colors and dimensions; TOTPQRSVG
// applies defaults and validation before calling this.
func RenderSVG(m Matrix, cfg Config) string {
	side := m.Side()
	size := moduleSize(cfg.MinDimension, side)
	canvas := size * side

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		canvas, canvas, canvas, canvas,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, canvas, canvas, cfg.LightColor))

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if m.Dark(x, y) {
				sb.WriteString(fmt.Sprintf(
					`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
					x*size, y*size, size, size, cfg.DarkColor,
				))
			}
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
