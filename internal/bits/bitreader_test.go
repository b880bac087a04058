package bits

import (
	"testing"
)

func TestReadBit(t *testing.T) {

	// 10000000 00000111 11111111 01100101
	bytesToTestWith := []byte{128, 7, 255, 101}
	expectedBits := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
		0, 1, 1, 0, 0, 1, 0, 1,
	}

	tBitReader := NewBitReader(bytesToTestWith)
	for iter, expectedBit := range expectedBits {
		if left := tBitReader.BitsLeftToRead(); left != len(expectedBits)-iter {
			t.Errorf("Expected %d bits left before iter %d, got %d", len(expectedBits)-iter, iter+1, left)
		}
		if bit := tBitReader.ReadBit(); bit != expectedBit {
			t.Errorf("Failure testing bit reader on iter %d, result was: %d, expected %d", iter+1, bit, expectedBit)
		}
	}
	if tBitReader.BitsLeftToRead() != 0 || tBitReader.ReadBit() != 0 {
		t.Errorf("Expected drained reader to report no bits and read zeros")
	}
}

func TestReadBitEmpty(t *testing.T) {
	br := NewBitReader(nil)
	if br.BitsLeftToRead() != 0 || br.ReadBit() != 0 {
		t.Errorf("Expected empty reader to report no bits and read zeros")
	}
}
