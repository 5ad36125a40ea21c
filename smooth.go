package graphseg

import "math"

// gaussianWidth is the kernel half-width in standard deviations.
const gaussianWidth = 4.0

// GaussianKernel returns the right half of a normalized 1-D Gaussian with
// standard deviation sigma: mask[0] is the centre tap and mask[i] the weight
// at distance i. The full kernel mask[0] + 2*Σ mask[i] sums to 1. Sigma is
// clamped to at least 0.01.
func GaussianKernel(sigma float64) []float64 {
	sigma = math.Max(sigma, 0.01)
	n := int(math.Ceil(sigma*gaussianWidth)) + 1
	mask := make([]float64, n)
	for i := range mask {
		r := float64(i) / sigma
		mask[i] = math.Exp(-0.5 * r * r)
	}

	sum := 0.0
	for i := 1; i < n; i++ {
		sum += math.Abs(mask[i])
	}
	sum = 2*sum + math.Abs(mask[0])
	for i := range mask {
		mask[i] /= sum
	}
	return mask
}

// Smooth blurs every channel of img with a separable Gaussian of standard
// deviation sigma and returns a new Image. Samples outside the image are
// clamped to the nearest edge pixel. sigma <= 0 returns an unmodified copy.
// Rows (then columns) are split across numWorkers goroutines.
func Smooth(img *Image, sigma float64, numWorkers int) *Image {
	if sigma <= 0 {
		return img.Clone()
	}
	mask := GaussianKernel(sigma)

	// Horizontal pass into tmp, then vertical pass into out.
	tmp := &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: make([]float64, len(img.Pix))}
	forEachRange(img.Height, numWorkers, func(start, end int) {
		for y := start; y < end; y++ {
			convolveLine(tmp, img, mask, y*img.Width, 1, img.Width)
		}
	})

	out := &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: make([]float64, len(img.Pix))}
	forEachRange(img.Width, numWorkers, func(start, end int) {
		for x := start; x < end; x++ {
			convolveLine(out, tmp, mask, x, img.Width, img.Height)
		}
	})
	return out
}

// convolveLine convolves one row or column of src with the symmetric mask
// and writes it to dst. The line starts at pixel first, advances by stride
// pixels, and has n pixels.
func convolveLine(dst, src *Image, mask []float64, first, stride, n int) {
	c := src.Channels
	for i := 0; i < n; i++ {
		p := first + i*stride
		for ch := 0; ch < c; ch++ {
			sum := mask[0] * src.Pix[p*c+ch]
			for j := 1; j < len(mask); j++ {
				lo := first + max(i-j, 0)*stride
				hi := first + min(i+j, n-1)*stride
				sum += mask[j] * (src.Pix[lo*c+ch] + src.Pix[hi*c+ch])
			}
			dst.Pix[p*c+ch] = sum
		}
	}
}
