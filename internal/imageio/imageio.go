// Package imageio reads and writes the image formats the segment command
// understands.
//
// Decoding sniffs the content, so any registered format can be read
// regardless of the file name: PNG, JPEG, GIF, PPM/PGM, BMP, TIFF, WebP and
// TGA. Encoding picks the format from the output file extension.
package imageio

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "github.com/ftrvxmtrx/tga" // register tga
	_ "golang.org/x/image/webp"  // register webp
)

// Output formats, keyed by lower-case file extension.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatPPM  = "ppm"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

var extFormats = map[string]string{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".ppm":  FormatPPM,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

const jpegQuality = 95

// Load opens and decodes the image at path. The returned string is the
// name of the detected format.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load %s", path)
	}
	return img, format, nil
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}
	return img, format, nil
}

// FormatFromPath returns the output format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extFormats[ext]
	if !ok {
		return "", errors.Errorf("unsupported output extension %q for %s", ext, path)
	}
	return format, nil
}

// Save encodes img to path in the format named by its extension.
// The file is only created once the extension has been accepted.
func Save(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err := Encode(f, img, format); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatGIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatPPM:
		err = ppm.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	return errors.Wrapf(err, "encode %s", format)
}

// Fit scales img down so neither side exceeds maxDim, keeping its aspect
// ratio. Images already within bounds, and maxDim <= 0, return img as is.
func Fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
