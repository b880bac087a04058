package test

import (
	"math/rand"
	"stegbench/pkg/model"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GeneratePayload returns printable ASCII bytes, which never contain the zero terminator byte.
func GeneratePayload(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	for i := range generatedBytes {
		generatedBytes[i] = byte(' ' + rand.Intn('~'-' '+1))
	}
	return generatedBytes
}

// GenerateNoiseRaster returns a raster of uniformly random samples, reproducible for a given seed.
func GenerateNoiseRaster(width, height, channels int, seed int64) *model.Raster {
	r, err := model.NewRaster(width, height, channels)
	if err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range r.Pix {
		r.Pix[i] = uint8(rng.Intn(256))
	}
	return r
}

// GenerateUniformRaster returns a raster where every sample has the same value.
func GenerateUniformRaster(width, height, channels int, value uint8) *model.Raster {
	r, err := model.NewRaster(width, height, channels)
	if err != nil {
		panic(err)
	}
	for i := range r.Pix {
		r.Pix[i] = value
	}
	return r
}

// GenerateStripedRaster returns a raster whose left half holds the flat value and whose right half holds vertical
// stripes two pixels wide alternating between 0 and 200. Its Sobel gradient only takes a few well separated values,
// which keeps gradient masks stable when least significant bits change.
func GenerateStripedRaster(width, height, channels int, flat uint8) *model.Raster {
	r := GenerateUniformRaster(width, height, channels, flat)
	for y := 0; y < height; y++ {
		for x := width / 2; x < width; x++ {
			var value uint8
			if (x-width/2)%4 >= 2 {
				value = 200
			}
			offset := r.PixOffset(x, y)
			for c := 0; c < channels; c++ {
				r.Pix[offset+c] = value
			}
		}
	}
	return r
}
