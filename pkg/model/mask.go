package model

// Mask selects the pixels of a raster that may carry hidden bits.
type Mask struct {
	Width, Height int
	Bits          []bool
}

func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Bits: make([]bool, width*height)}
}

// Count returns the number of selected pixels.
func (m *Mask) Count() int {
	var selected int
	for _, b := range m.Bits {
		if b {
			selected++
		}
	}
	return selected
}

// Raster renders the mask as a grayscale raster, 255 for selected pixels and 0 elsewhere.
func (m *Mask) Raster() *Raster {
	r := &Raster{Width: m.Width, Height: m.Height, Channels: GrayChannels, Pix: make([]uint8, len(m.Bits))}
	for p, b := range m.Bits {
		if b {
			r.Pix[p] = 255
		}
	}
	return r
}
