package color

import "math"

// NormalizeHue maps any hue, including negative or >360 values, into [0,360).
func NormalizeHue(h int) int {
	return ((h % 360) + 360) % 360
}

// RGBToHSL converts via the standard max/min channel algorithm.
// The achromatic case (delta == 0) yields h=0, s=0. Output is rounded to
// integer degrees and percent.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l := (max + min) / 2

	var h, s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))

		switch max {
		case r:
			h = 60 * math.Mod((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
		if h < 0 {
			h += 360
		}
	}

	return HSL{
		H: NormalizeHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts via the standard chroma/hue-sector algorithm.
// The hue is normalized first so negative or >360 inputs are safe.
func HSLToRGB(c HSL) RGB {
	h := float64(NormalizeHue(c.H))
	s := math.Min(math.Max(float64(c.S)/100, 0), 1)
	l := math.Min(math.Max(float64(c.L)/100, 0), 1)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// ANSI256 quantizes an RGB color to the xterm 256-color palette using the
// direct formula: the grayscale ramp for exactly gray inputs, the 6x6x6 cube
// otherwise. This is the canonical conversion used by capability downgrade.
//
// The grayscale multiplier is 23, not 24: the ramp has exactly 24 entries
// (232-255 inclusive) and a multiplier of 24 overflows to index 256 at r=255.
func ANSI256(c RGB) uint8 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return 16
		case c.R > 248:
			return 231
		default:
			return uint8(math.Round(float64(c.R-8)/247*23)) + 232
		}
	}

	level := func(channel uint8) int {
		return int(math.Round(float64(channel) / 255 * 5))
	}
	return uint8(16 + 36*level(c.R) + 6*level(c.G) + level(c.B))
}

// ansi16 maps palette indices 0-15 to typical terminal RGB values.
var ansi16 = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0xaa, 0x00, 0x00}, // red
	{0x00, 0xaa, 0x00}, // green
	{0xaa, 0x55, 0x00}, // yellow
	{0x00, 0x00, 0xaa}, // blue
	{0xaa, 0x00, 0xaa}, // magenta
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0xff, 0x55, 0x55}, // bright red
	{0x55, 0xff, 0x55}, // bright green
	{0xff, 0xff, 0x55}, // bright yellow
	{0x55, 0x55, 0xff}, // bright blue
	{0xff, 0x55, 0xff}, // bright magenta
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// cubeLevels are the channel values of the 6x6x6 cube axes.
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// ANSI256ToRGB inverts a 256-color palette index to its RGB value.
func ANSI256ToRGB(index uint8) RGB {
	switch {
	case index < 16:
		return ansi16[index]
	case index >= 232:
		gray := (index-232)*10 + 8
		return RGB{R: gray, G: gray, B: gray}
	default:
		cube := index - 16
		return RGB{
			R: cubeLevels[(cube/36)%6],
			G: cubeLevels[(cube/6)%6],
			B: cubeLevels[cube%6],
		}
	}
}

// NearestANSI256 quantizes by nearest-neighbor search over all 256 palette
// entries using a perceptually weighted distance: red weighted by
// 2 + meanRed/256, blue by 2 + (255-meanRed)/256, green fixed at 4.
//
// It diverges from ANSI256 for inputs slightly off the cube grid; ANSI256
// remains the canonical conversion, this one exists for exact-input reuse.
func NearestANSI256(c RGB) uint8 {
	best := 0
	bestDistance := math.Inf(1)

	for index := 0; index < 256; index++ {
		entry := ANSI256ToRGB(uint8(index))

		meanRed := (float64(c.R) + float64(entry.R)) / 2
		wr := 2 + meanRed/256
		wg := 4.0
		wb := 2 + (255-meanRed)/256

		dr := float64(c.R) - float64(entry.R)
		dg := float64(c.G) - float64(entry.G)
		db := float64(c.B) - float64(entry.B)

		distance := wr*dr*dr + wg*dg*dg + wb*db*db
		if distance < bestDistance {
			bestDistance = distance
			best = index
		}
	}

	return uint8(best)
}

// RGBToHSV converts to hue [0,360), saturation [0,1] and value [0,1].
// Used by the gradient engine for hue-spin interpolation.
func RGBToHSV(c RGB) (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if max > 0 {
		s = delta / max
	}

	if delta != 0 {
		switch max {
		case r:
			h = 60 * math.Mod((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
		if h < 0 {
			h += 360
		}
	}

	return h, s, v
}

// HSVToRGB converts hue [0,360), saturation [0,1] and value [0,1] back to RGB.
func HSVToRGB(h, s, v float64) RGB {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	s = math.Min(math.Max(s, 0), 1)
	v = math.Min(math.Max(v, 0), 1)

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}
