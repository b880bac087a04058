package model

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

const (
	GrayChannels  = 1
	ColorChannels = 3
)

var (
	ErrInvalidShape = errors.New("invalid raster shape")
)

// Raster is an 8-bit sample buffer of shape (Height, Width) or (Height, Width, 3). Samples are stored row-major and
// channel-minor, so sample (x, y, c) lives at (y*Width+x)*Channels+c. Color rasters hold R, G, B in that order.
type Raster struct {
	Width, Height, Channels int
	Pix                     []uint8
}

func NewRaster(width, height, channels int) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidShape, width, height)
	}
	if channels != GrayChannels && channels != ColorChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidShape, channels)
	}
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// Validate reports whether the raster header agrees with its sample buffer.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidShape)
	}
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidShape, r.Width, r.Height)
	}
	if r.Channels != GrayChannels && r.Channels != ColorChannels {
		return fmt.Errorf("%w: %d channels", ErrInvalidShape, r.Channels)
	}
	if len(r.Pix) != r.Width*r.Height*r.Channels {
		return fmt.Errorf("%w: %d samples for %dx%dx%d", ErrInvalidShape, len(r.Pix), r.Width, r.Height, r.Channels)
	}
	return nil
}

func (r *Raster) Pixels() int {
	return r.Width * r.Height
}

func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * r.Channels
}

func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Width: r.Width, Height: r.Height, Channels: r.Channels, Pix: pix}
}

func (r *Raster) SameShape(o *Raster) bool {
	return r.Width == o.Width && r.Height == o.Height && r.Channels == o.Channels
}

func (r *Raster) Shape() string {
	if r.Channels == GrayChannels {
		return fmt.Sprintf("(%d,%d)", r.Height, r.Width)
	}
	return fmt.Sprintf("(%d,%d,%d)", r.Height, r.Width, r.Channels)
}

// Gray returns a single channel copy of the raster. Color samples are reduced with the fixed point BT.601 luma
// weights, rounded to nearest.
func (r *Raster) Gray() *Raster {
	if r.Channels == GrayChannels {
		return r.Clone()
	}
	gray := &Raster{Width: r.Width, Height: r.Height, Channels: GrayChannels, Pix: make([]uint8, r.Pixels())}
	for p := range gray.Pix {
		px := r.Pix[p*3 : p*3+3]
		gray.Pix[p] = luma(px[0], px[1], px[2])
	}
	return gray
}

func luma(red, green, blue uint8) uint8 {
	return uint8((uint32(red)*4899 + uint32(green)*9617 + uint32(blue)*1868 + 8192) >> 14)
}

// ToImage exposes the raster as a standard library image. Color rasters become fully opaque RGBA images.
func (r *Raster) ToImage() image.Image {
	bounds := image.Rect(0, 0, r.Width, r.Height)
	if r.Channels == GrayChannels {
		img := image.NewGray(bounds)
		for y := 0; y < r.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+r.Width], r.Pix[y*r.Width:(y+1)*r.Width])
		}
		return img
	}

	img := image.NewRGBA(bounds)
	for p := 0; p < r.Pixels(); p++ {
		copy(img.Pix[p*4:p*4+3], r.Pix[p*3:p*3+3])
		img.Pix[p*4+3] = 255
	}
	return img
}

// FromImage copies any image into a raster with the requested channel count. Alpha is discarded.
func FromImage(img image.Image, channels int) (*Raster, error) {
	bounds := img.Bounds()
	r, err := NewRaster(bounds.Dx(), bounds.Dy(), channels)
	if err != nil {
		return nil, err
	}

	if channels == GrayChannels {
		gray, ok := img.(*image.Gray)
		if !ok {
			gray = image.NewGray(image.Rect(0, 0, r.Width, r.Height))
			draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		}
		for y := 0; y < r.Height; y++ {
			rowStart := gray.PixOffset(gray.Rect.Min.X, gray.Rect.Min.Y+y)
			copy(r.Pix[y*r.Width:(y+1)*r.Width], gray.Pix[rowStart:rowStart+r.Width])
		}
		return r, nil
	}

	// TODO: Work with 16-bit images without truncating to 8 bits per channel
	rgba := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	for p := 0; p < r.Pixels(); p++ {
		copy(r.Pix[p*3:p*3+3], rgba.Pix[p*4:p*4+3])
	}
	return r, nil
}

// ChannelsOf reports how many channels a decoded image naturally carries. Paletted images whose palette only holds
// grays, as written by 8-bit BMP encoders, count as grayscale.
func ChannelsOf(img image.Image) int {
	switch model := img.ColorModel().(type) {
	case color.Palette:
		for _, c := range model {
			if !isGray(c) {
				return ColorChannels
			}
		}
		return GrayChannels
	default:
		if model == color.GrayModel || model == color.Gray16Model {
			return GrayChannels
		}
		return ColorChannels
	}
}

func isGray(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == g && g == b
}
