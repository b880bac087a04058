// Package imageio loads and saves rasters in the standard raster formats. Nothing beyond the pixels is stored, so a
// stego image written as PNG or BMP keeps its payload while JPEG destroys it.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"stegbench/pkg/model"
	"strings"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatJPEG Format = "jpeg"

	DefaultJPEGQuality = 95
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// EncodeOptions tunes the lossless and lossy encoders. The zero value uses the codec defaults.
type EncodeOptions struct {
	PngCompressionLevel png.CompressionLevel
	JPEGQuality         int
}

// ParseFormat accepts format names, MIME types and file extensions.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png", "image/png":
		return FormatPNG, nil
	case "bmp", "image/bmp":
		return FormatBMP, nil
	case "jpg", "jpeg", "image/jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads a PNG, BMP or JPEG image. Grayscale images become single channel rasters, everything else is reduced
// to RGB.
func Decode(r io.Reader) (*model.Raster, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	format, err := ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	raster, err := model.FromImage(img, model.ChannelsOf(img))
	if err != nil {
		return nil, "", err
	}
	return raster, format, nil
}

func DecodeBytes(data []byte) (*model.Raster, Format, error) {
	return Decode(bytes.NewReader(data))
}

func Encode(w io.Writer, raster *model.Raster, format Format, opts EncodeOptions) error {
	if err := raster.Validate(); err != nil {
		return err
	}

	img := raster.ToImage()
	switch format {
	case FormatPNG:
		encoder := png.Encoder{CompressionLevel: opts.PngCompressionLevel}
		return encoder.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func EncodeBytes(raster *model.Raster, format Format, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, raster, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Load(path string) (*model.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raster, _, err := Decode(f)
	return raster, err
}

// Save writes raster to path in the format named by its extension.
func Save(path string, raster *model.Raster, opts EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, raster, format, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
