package bits

import (
	"encoding/binary"
	"fmt"
)

const lengthHeaderSize = 8

// Framing decides how the end of an embedded payload is detected.
type Framing int

const (
	// Terminated appends a single zero byte after the payload.
	Terminated Framing = iota
	// LengthPrefixed stores the payload length as an 8 byte big-endian header before the payload.
	LengthPrefixed
)

func (f Framing) String() string {
	switch f {
	case Terminated:
		return "terminator"
	case LengthPrefixed:
		return "length-prefix"
	default:
		return fmt.Sprintf("Framing(%d)", int(f))
	}
}

// Overhead is the number of framing bytes added to a payload.
func (f Framing) Overhead() int {
	if f == LengthPrefixed {
		return lengthHeaderSize
	}
	return 1
}

func (f Framing) EncodedBytes(payloadLen int) int {
	return payloadLen + f.Overhead()
}

func (f Framing) EncodedBits(payloadLen int) int {
	return f.EncodedBytes(payloadLen) * 8
}

// Frame returns the bytes to embed for the payload.
func (f Framing) Frame(payload []byte) []byte {
	framed := make([]byte, 0, f.EncodedBytes(len(payload)))
	if f == LengthPrefixed {
		framed = binary.BigEndian.AppendUint64(framed, uint64(len(payload)))
		return append(framed, payload...)
	}
	framed = append(framed, payload...)
	return append(framed, Terminator)
}
