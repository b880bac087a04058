package stego

import (
	"bytes"
	"errors"
	"stegbench/pkg/model"
	"stegbench/test"
	"testing"
)

func TestAdaptiveEncodeDecode(t *testing.T) {
	runWithAllChannelAndFramingSettings(t, func(t *testing.T, channels int, framing string, opts []Option) {
		cover := test.GenerateStripedRaster(32, 16, channels, 200)
		engine, err := NewAdaptiveEngine(DefaultThreshold, opts...)
		if err != nil {
			t.Fatalf("NewAdaptiveEngine: %s", err)
		}

		payload := test.GeneratePayload(20)
		stegoImage, stats, err := engine.Embed(cover, payload)
		if err != nil {
			t.Fatalf("Embed with %s framing: %s", framing, err)
		}
		if stats.Threshold == nil || *stats.Threshold != DefaultThreshold {
			t.Errorf("Expected the requested threshold to be used, got %v", stats.Threshold)
		}

		mask := EmbeddingMask(Gradient(cover), DefaultThreshold)
		for _, offset := range changedOffsets(cover, stegoImage) {
			if !mask.Bits[offset/channels] {
				t.Fatalf("Sample %d outside of the textured region was modified", offset)
			}
		}

		extracted, err := engine.Extract(stegoImage)
		if err != nil {
			t.Fatalf("Extract: %s", err)
		}
		if !bytes.Equal(payload, extracted) {
			t.Errorf("Embedded %q but extracted %q with %s framing", payload, extracted, framing)
		}
	})
}

func TestAdaptiveCapacity(t *testing.T) {
	engine, _ := NewAdaptiveEngine(DefaultThreshold)
	tests := []struct {
		name  string
		cover *model.Raster
		want  int
	}{
		{"gray striped", test.GenerateStripedRaster(32, 16, model.GrayChannels, 200), 32},
		{"color striped", test.GenerateStripedRaster(32, 16, model.ColorChannels, 200), 96},
		{"flat", test.GenerateUniformRaster(32, 16, model.ColorChannels, 90), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Capacity(tt.cover)
			if err != nil {
				t.Fatalf("Capacity: %s", err)
			}
			if got != tt.want {
				t.Errorf("Capacity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdaptiveRelaxesThreshold(t *testing.T) {
	cover := test.GenerateStripedRaster(32, 16, model.GrayChannels, 100)
	sink := &recordingSink{}
	engine, _ := NewAdaptiveEngine(200, WithSink(sink))

	if capacity, _ := engine.Capacity(cover); capacity != 28 {
		t.Fatalf("Expected a capacity of 28 bytes at threshold 200, got %d", capacity)
	}

	stegoImage, stats, err := engine.Embed(cover, test.GeneratePayload(29))
	if err != nil {
		t.Fatalf("Embed: %s", err)
	}
	if stats.Threshold == nil || *stats.Threshold != 125 {
		t.Fatalf("Expected the threshold to relax to 125, got %v", stats.Threshold)
	}
	if engine.Threshold() != 200 {
		t.Errorf("Relaxation must not change the configured threshold, got %d", engine.Threshold())
	}

	mask := EmbeddingMask(Gradient(cover), 125)
	for _, offset := range changedOffsets(cover, stegoImage) {
		if !mask.Bits[offset] {
			t.Fatalf("Sample %d outside of the relaxed mask was modified", offset)
		}
	}

	var relaxations int
	for _, msg := range sink.messages {
		if msg == "relaxed gradient threshold" {
			relaxations++
		}
	}
	if relaxations != 15 {
		t.Errorf("Expected 15 relaxation steps from 200 to 125, got %d", relaxations)
	}
}

func TestAdaptivePayloadTooBig(t *testing.T) {
	cover := test.GenerateStripedRaster(32, 16, model.GrayChannels, 100)
	engine, _ := NewAdaptiveEngine(200)

	_, _, err := engine.Embed(cover, test.GeneratePayload(32))
	var capacityErr *CapacityError
	if !errors.As(err, &capacityErr) {
		t.Fatalf("Expected a *CapacityError, got %v", err)
	}
	if capacityErr.Required != 33 || capacityErr.Available != 32 {
		t.Errorf("Expected 33 bytes required and 32 available at threshold 0, got %+v", capacityErr)
	}
}

func TestAdaptiveFlatImageHasNoCapacity(t *testing.T) {
	engine, _ := NewAdaptiveEngine(0)
	_, _, err := engine.Embed(test.GenerateUniformRaster(10, 10, model.GrayChannels, 50), []byte("a"))
	if !errors.Is(err, ErrImageNotBigEnough) {
		t.Errorf("Expected ErrImageNotBigEnough for a flat image, got %v", err)
	}
}

func TestNewAdaptiveEngineRejectsBadThresholds(t *testing.T) {
	for _, threshold := range []int{-1, 256, 1000} {
		if _, err := NewAdaptiveEngine(threshold); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("Threshold %d: expected ErrInvalidThreshold, got %v", threshold, err)
		}
	}
	for _, threshold := range []int{0, DefaultThreshold, MaxThreshold} {
		if _, err := NewAdaptiveEngine(threshold); err != nil {
			t.Errorf("Threshold %d: unexpected error %s", threshold, err)
		}
	}
}

func TestGradient(t *testing.T) {
	flat := Gradient(test.GenerateUniformRaster(6, 6, model.ColorChannels, 77))
	if flat.Channels != model.GrayChannels {
		t.Fatalf("Expected a single channel gradient, got %d channels", flat.Channels)
	}
	for i, g := range flat.Pix {
		if g != 0 {
			t.Fatalf("Expected a flat image to have zero gradient, sample %d is %d", i, g)
		}
	}

	striped := Gradient(test.GenerateStripedRaster(32, 16, model.GrayChannels, 200))
	var seenMax bool
	for _, g := range striped.Pix {
		seenMax = seenMax || g == 255
	}
	if !seenMax {
		t.Errorf("Expected the strongest edge to be stretched to 255")
	}
	if striped.Pix[striped.PixOffset(2, 8)] != 0 {
		t.Errorf("Expected the flat half to have zero gradient, got %d", striped.Pix[striped.PixOffset(2, 8)])
	}
}

func TestEmbeddingMaskIsStrict(t *testing.T) {
	gradient := &model.Raster{Width: 3, Height: 1, Channels: 1, Pix: []uint8{29, 30, 31}}
	mask := EmbeddingMask(gradient, 30)
	if mask.Bits[0] || mask.Bits[1] || !mask.Bits[2] {
		t.Errorf("Expected only gradients above the threshold to be selected, got %v", mask.Bits)
	}
}

func TestBitPlane(t *testing.T) {
	img := &model.Raster{Width: 2, Height: 1, Channels: 1, Pix: []uint8{0b1000_0001, 0b0000_0010}}
	plane, err := BitPlane(img, 0)
	if err != nil {
		t.Fatalf("BitPlane: %s", err)
	}
	if plane.Pix[0] != 255 || plane.Pix[1] != 0 {
		t.Errorf("Unexpected bit plane 0: %v", plane.Pix)
	}
	plane, _ = BitPlane(img, 7)
	if plane.Pix[0] != 255 || plane.Pix[1] != 0 {
		t.Errorf("Unexpected bit plane 7: %v", plane.Pix)
	}
	if img.Pix[0] != 0b1000_0001 {
		t.Errorf("BitPlane modified its input")
	}
	for _, bit := range []int{-1, 8} {
		if _, err = BitPlane(img, bit); !errors.Is(err, ErrInvalidBitPosition) {
			t.Errorf("Bit %d: expected ErrInvalidBitPosition, got %v", bit, err)
		}
	}
}

func TestTextPayloadConversion(t *testing.T) {
	if got := TextFromPayload(PayloadFromText("héllo")); got != "héllo" {
		t.Errorf("Expected Latin-1 text to survive, got %q", got)
	}
	if got := PayloadFromText("€"); len(got) != 1 || got[0] != 0xAC {
		t.Errorf("Expected code points above 255 to keep their low byte, got %v", got)
	}
}
