package stego

import (
	"stegbench/pkg/model"
)

// slotCursor walks the embeddable samples of a raster in raster order, channel-minor. Embedding and extraction must
// walk the exact same order, there is nothing in the image to detect a mismatch. When a mask is set, unselected
// pixels are skipped entirely while a selected pixel yields all of its channels.
type slotCursor struct {
	raster                       *model.Raster
	mask                         *model.Mask
	currentPixel, currentChannel int
}

func newSlotCursor(raster *model.Raster, mask *model.Mask) *slotCursor {
	return &slotCursor{raster: raster, mask: mask}
}

// next returns the sample offset of the next slot, or false once the image is exhausted.
func (c *slotCursor) next() (int, bool) {
	pixels := c.raster.Pixels()
	if c.currentChannel == 0 {
		for c.currentPixel < pixels && c.mask != nil && !c.mask.Bits[c.currentPixel] {
			c.currentPixel++
		}
	}
	if c.currentPixel >= pixels {
		return 0, false
	}

	offset := c.currentPixel*c.raster.Channels + c.currentChannel
	c.incrementCurrentSlot()
	return offset, true
}

func (c *slotCursor) incrementCurrentSlot() {
	c.currentChannel++
	if c.currentChannel == c.raster.Channels {
		c.currentChannel = 0
		c.currentPixel++
	}
}

func slotCount(raster *model.Raster, mask *model.Mask) int {
	if mask == nil {
		return raster.Pixels() * raster.Channels
	}
	return mask.Count() * raster.Channels
}
