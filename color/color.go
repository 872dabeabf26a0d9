// Package color implements the color model: canonicalization of heterogeneous
// color inputs into RGB, conversions between RGB, HSL and the ANSI-256 palette,
// and derived palette operations.
package color

import "fmt"

// RGB is a canonical 24-bit color. Values are immutable once produced.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the lowercase "#rrggbb" representation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Int returns the color packed as a 24-bit integer (0xRRGGBB).
func (c RGB) Int() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees [0,360) and circular; S and L are percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String implements fmt.Stringer.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)", c.H, c.S, c.L)
}
