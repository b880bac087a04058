package stego

import (
	"fmt"
	"stegbench/internal/bits"
	"stegbench/pkg/model"
	"time"
)

func validateRaster(img *model.Raster) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return nil
}

// checkCapacity fails when the framed payload needs more bytes than the selected slots can carry.
func checkCapacity(raster *model.Raster, mask *model.Mask, payloadLen int, framing bits.Framing) error {
	required := framing.EncodedBytes(payloadLen)
	available := slotCount(raster, mask) / 8
	if required > available {
		return &CapacityError{Required: required, Available: available}
	}
	return nil
}

// embedPayload writes the framed payload into the least significant bit of the selected slots of a copy of cover.
// Capacity must have been checked by the caller.
func embedPayload(cover *model.Raster, mask *model.Mask, payload []byte, o options) (*model.Raster, model.EmbedStats) {
	var stats model.EmbedStats
	setupStart := time.Now()
	stegoImage := cover.Clone()
	br := bits.NewBitReader(o.framing.Frame(payload))
	cursor := newSlotCursor(stegoImage, mask)
	stats.Setup = time.Since(setupStart)

	embedStart := time.Now()
	for br.BitsLeftToRead() > 0 {
		offset, ok := cursor.next()
		if !ok {
			break
		}
		stegoImage.Pix[offset] = (stegoImage.Pix[offset] & 0xFE) | br.ReadBit()
		stats.BitsEmbedded++
	}
	stats.DataEmbedding = time.Since(embedStart)

	o.sink.Debug("payload embedded",
		"payload_bytes", len(payload),
		"bits_embedded", stats.BitsEmbedded,
		"framing", o.framing.String(),
		"duration", stats.DataEmbedding)
	return stegoImage, stats
}

// extractPayload reads least significant bits from the selected slots until the frame is complete or the image is
// exhausted, in which case whatever complete bytes were read are returned.
func extractPayload(stegoImage *model.Raster, mask *model.Mask, o options) []byte {
	collector := bits.NewCollector(o.framing)
	cursor := newSlotCursor(stegoImage, mask)
	var bitsRead int
	for {
		offset, ok := cursor.next()
		if !ok {
			break
		}
		bitsRead++
		if collector.Push(stegoImage.Pix[offset] & 1) {
			break
		}
	}

	o.sink.Debug("payload extracted",
		"bits_read", bitsRead,
		"frame_complete", collector.Done(),
		"payload_bytes", len(collector.Payload()))
	return collector.Payload()
}
