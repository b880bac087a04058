package bits

import "encoding/binary"

// Collector rebuilds framed bytes from extracted bits and reports when the frame is complete, so extraction can stop
// without scanning the rest of the carrier.
type Collector struct {
	framing        Framing
	bytes          []byte
	currByte       byte
	currBit        uint
	expectedLength uint64
	done           bool
}

func NewCollector(framing Framing) *Collector {
	return &Collector{framing: framing}
}

// Push appends one bit and returns true once the frame is complete. Bits pushed after completion are ignored.
func (c *Collector) Push(bit uint8) bool {
	if c.done {
		return true
	}

	c.currByte = c.currByte<<1 | (bit & 1)
	c.currBit++
	if c.currBit < 8 {
		return false
	}

	completed := c.currByte
	c.currByte, c.currBit = 0, 0

	switch c.framing {
	case LengthPrefixed:
		c.bytes = append(c.bytes, completed)
		if len(c.bytes) == lengthHeaderSize {
			c.expectedLength = binary.BigEndian.Uint64(c.bytes)
		}
		c.done = len(c.bytes) >= lengthHeaderSize && uint64(len(c.bytes)-lengthHeaderSize) >= c.expectedLength
	default:
		if completed == Terminator {
			c.done = true
		} else {
			c.bytes = append(c.bytes, completed)
		}
	}
	return c.done
}

// Done reports whether the frame end was found.
func (c *Collector) Done() bool {
	return c.done
}

// Payload returns the decoded payload. When the frame never completed it returns whatever complete payload bytes were
// collected.
func (c *Collector) Payload() []byte {
	if c.framing != LengthPrefixed {
		return c.bytes
	}
	if len(c.bytes) <= lengthHeaderSize {
		return []byte{}
	}
	return c.bytes[lengthHeaderSize:]
}
