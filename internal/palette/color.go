package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit display colour.
type Color struct {
	R, G, B uint8
}

// White is used for the rainbow head.
var White = Color{255, 255, 255}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ColorFor returns the colour of the cell level rows behind the head of a
// trail of the given length. Level 0 is the head; level == length is the
// dimmest. key only matters for Rainbow, where it picks the hue.
func ColorFor(s Scheme, level, length, key int) Color {
	if length < 1 {
		length = 1
	}
	if level < 0 {
		level = 0
	}
	fade := math.Min(float64(level)/float64(length), 1)

	switch s {
	case Blue:
		return tiered(level, Color{200, 220, 255}, Color{100, 150, 255}, func() Color {
			v := intensity(fade)
			return Color{0, scale(100, v), scale(255, v)}
		})
	case Red:
		return tiered(level, Color{255, 220, 200}, Color{255, 100, 100}, func() Color {
			return Color{scale(255, intensity(fade)), scale(30, 1-fade), 0}
		})
	case Purple:
		return tiered(level, Color{240, 200, 255}, Color{200, 100, 255}, func() Color {
			v := intensity(fade)
			return Color{scale(180, v), 0, scale(255, v)}
		})
	case Cyan:
		return tiered(level, Color{200, 255, 255}, Color{100, 255, 255}, func() Color {
			v := intensity(fade)
			return Color{0, scale(255, v), scale(255, v)}
		})
	case Rainbow:
		if level == 0 {
			return White
		}
		hue := math.Mod(float64(key)*10+float64(level)*15, 360)
		if hue < 0 {
			hue += 360
		}
		r, g, b := colorful.Hsv(hue, 1, math.Max(1-fade*0.8, 0.2)).RGB255()
		return Color{r, g, b}
	default:
		return tiered(level, Color{200, 255, 200}, Color{100, 255, 100}, func() Color {
			return Color{scale(30, 1-fade), scale(255, intensity(fade)), 0}
		})
	}
}

// tiered picks the head colour, then the glow colour, then the faded body.
func tiered(level int, head, glow Color, body func() Color) Color {
	switch level {
	case 0:
		return head
	case 1:
		return glow
	}
	return body()
}

func intensity(fade float64) float64 {
	return math.Max(1-fade*0.85, 0.15)
}

func scale(peak, v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, peak*v)))
}
