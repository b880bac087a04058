package stego

import (
	"fmt"
	"stegbench/pkg/model"
	"testing"
)

type testFunc func(t *testing.T, channels int, framing string, opts []Option)

// runWithAllChannelAndFramingSettings runs a test for grayscale and color carriers with both payload framings.
func runWithAllChannelAndFramingSettings(t *testing.T, testFunc testFunc) {
	framings := map[string][]Option{
		"terminator":    nil,
		"length-prefix": {WithLengthPrefix()},
	}
	for _, channels := range []int{model.GrayChannels, model.ColorChannels} {
		channelsCopy := channels
		t.Run(fmt.Sprintf("channels-%d", channels), func(t *testing.T) {
			t.Parallel()
			for framing, opts := range framings {
				framingCopy, optsCopy := framing, opts
				t.Run(framing, func(t *testing.T) {
					t.Parallel()
					testFunc(t, channelsCopy, framingCopy, optsCopy)
				})
			}
		})
	}
}

// changedOffsets lists the sample offsets that differ between two rasters of the same shape.
func changedOffsets(a, b *model.Raster) []int {
	var changed []int
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			changed = append(changed, i)
		}
	}
	return changed
}

// readLSBs collects the least significant bits of the first n samples.
func readLSBs(r *model.Raster, n int) []uint8 {
	lsbs := make([]uint8, n)
	for i := 0; i < n; i++ {
		lsbs[i] = r.Pix[i] & 1
	}
	return lsbs
}

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Debug(msg string, _ ...any) {
	s.messages = append(s.messages, msg)
}
