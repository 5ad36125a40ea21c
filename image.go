package graphseg

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a float raster with interleaved channels. Pixel i (i = y*Width+x)
// occupies Pix[i*Channels : (i+1)*Channels].
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64
}

// NewImage allocates a zeroed Image.
func NewImage(width, height, channels int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("graphseg: image dimensions must be >= 1, got %dx%d", width, height)
	}
	if channels < 1 {
		return nil, fmt.Errorf("graphseg: image needs at least one channel, got %d", channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}, nil
}

// NewImageFromPlanes interleaves one or more single-channel planes (for
// example smoothed R, G and B) into an Image. Every plane must hold exactly
// width*height values.
func NewImageFromPlanes(width, height int, planes ...[]float64) (*Image, error) {
	img, err := NewImage(width, height, len(planes))
	if err != nil {
		return nil, err
	}
	n := width * height
	for c, plane := range planes {
		if len(plane) != n {
			return nil, fmt.Errorf("graphseg: plane %d has %d values, want %d (%dx%d)", c, len(plane), n, width, height)
		}
		for i, v := range plane {
			img.Pix[i*img.Channels+c] = v
		}
	}
	return img, nil
}

// FromImage converts any image.Image into a three-channel Image holding
// 8-bit R, G and B values in [0, 255]. Alpha is dropped: the stored colour
// is used, not the alpha-premultiplied one.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("graphseg: source image is nil")
	}
	b := src.Bounds()
	img, err := NewImage(b.Dx(), b.Dy(), 3)
	if err != nil {
		return nil, err
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			img.Pix[i] = float64(c.R)
			img.Pix[i+1] = float64(c.G)
			img.Pix[i+2] = float64(c.B)
			i += 3
		}
	}
	return img, nil
}

// Len returns the number of pixels.
func (img *Image) Len() int { return img.Width * img.Height }

// Pixel returns the channel values of pixel i as a sub-slice of Pix.
// The returned slice aliases the image.
func (img *Image) Pixel(i int) []float64 {
	off := i * img.Channels
	return img.Pix[off : off+img.Channels : off+img.Channels]
}

// Plane copies channel c out into a new width*height slice.
func (img *Image) Plane(c int) []float64 {
	out := make([]float64, img.Len())
	for i := range out {
		out[i] = img.Pix[i*img.Channels+c]
	}
	return out
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	pix := make([]float64, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: pix}
}

// validate checks that the image is well formed.
func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("graphseg: image is nil")
	}
	if img.Width < 1 || img.Height < 1 {
		return fmt.Errorf("graphseg: image dimensions must be >= 1, got %dx%d", img.Width, img.Height)
	}
	if img.Channels < 1 {
		return fmt.Errorf("graphseg: image needs at least one channel, got %d", img.Channels)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return fmt.Errorf("graphseg: image has %d values, want %d (%dx%dx%d)",
			len(img.Pix), want, img.Width, img.Height, img.Channels)
	}
	return nil
}
