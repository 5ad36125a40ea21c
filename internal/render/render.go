// Package render turns segmentation labels into viewable images.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/TrevorS/graphseg"
)

// Palette assigns a display colour to each region label.
type Palette interface {
	Color(label int) color.NRGBA
}

// Colorize paints every pixel of res with its region's palette colour.
// Pixels are visited in row-major order, so palettes that pick colours on
// first use are deterministic for a given seed. Results without image
// dimensions, such as those of graphseg.SegmentEdges, give an empty image.
func Colorize(res *graphseg.Result, p Palette) *image.NRGBA {
	if res.Width < 1 || res.Height < 1 || len(res.Labels) != res.Width*res.Height {
		return image.NewNRGBA(image.Rectangle{})
	}
	out := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
	for i, label := range res.Labels {
		c := p.Color(label)
		off := (i/res.Width)*out.Stride + (i%res.Width)*4
		out.Pix[off] = c.R
		out.Pix[off+1] = c.G
		out.Pix[off+2] = c.B
		out.Pix[off+3] = c.A
	}
	return out
}

// lazyPalette remembers the colour handed out for each label.
type lazyPalette struct {
	colors map[int]color.NRGBA
	next   func() color.NRGBA
}

func (p *lazyPalette) Color(label int) color.NRGBA {
	if c, ok := p.colors[label]; ok {
		return c
	}
	c := p.next()
	p.colors[label] = c
	return c
}

// RandomPalette gives each new label a uniformly random opaque colour.
func RandomPalette(rng *rand.Rand) Palette {
	return &lazyPalette{
		colors: make(map[int]color.NRGBA),
		next: func() color.NRGBA {
			return color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			}
		},
	}
}

// goldenAngle spaces successive hues so neighbours in label order stay far
// apart on the colour wheel.
const goldenAngle = 137.50776405003785

// HuePalette hands out saturated colours whose hues step around the wheel
// by the golden angle from a random start. Saturation and value are
// jittered so that hues that come round again remain distinguishable.
func HuePalette(rng *rand.Rand) Palette {
	hue := rng.Float64() * 360
	return &lazyPalette{
		colors: make(map[int]color.NRGBA),
		next: func() color.NRGBA {
			s := 0.55 + 0.45*rng.Float64()
			v := 0.65 + 0.35*rng.Float64()
			r, g, b := colorful.Hsv(hue, s, v).Clamped().RGB255()
			hue = math.Mod(hue+goldenAngle, 360)
			return color.NRGBA{R: r, G: g, B: b, A: 255}
		},
	}
}

// meanPalette maps each label to its region's mean colour.
type meanPalette map[int]color.NRGBA

func (p meanPalette) Color(label int) color.NRGBA {
	return p[label]
}

// MeanPalette colours every region with its average pixel value. Single
// channel statistics render as grey, and labels without statistics render
// as transparent black.
func MeanPalette(stats []graphseg.RegionStats) Palette {
	p := make(meanPalette, len(stats))
	for _, s := range stats {
		var c color.NRGBA
		switch len(s.Mean) {
		case 0:
			continue
		case 1, 2:
			v := toByte(s.Mean[0])
			c = color.NRGBA{R: v, G: v, B: v, A: 255}
		default:
			c = color.NRGBA{R: toByte(s.Mean[0]), G: toByte(s.Mean[1]), B: toByte(s.Mean[2]), A: 255}
		}
		p[s.Label] = c
	}
	return p
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
