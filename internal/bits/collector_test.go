package bits

import (
	"bytes"
	"testing"
)

func pushAll(c *Collector, framed []byte) (bitsConsumed int) {
	br := NewBitReader(framed)
	for br.BitsLeftToRead() > 0 {
		bitsConsumed++
		if c.Push(br.ReadBit()) {
			return bitsConsumed
		}
	}
	return bitsConsumed
}

func TestCollectorFramings(t *testing.T) {
	payloads := [][]byte{
		[]byte(""),
		[]byte("A"),
		[]byte("hello world"),
	}

	for _, framing := range []Framing{Terminated, LengthPrefixed} {
		for _, payload := range payloads {
			t.Run(framing.String()+"/"+string(payload), func(t *testing.T) {
				framed := framing.Frame(payload)
				if len(framed) != framing.EncodedBytes(len(payload)) {
					t.Fatalf("Expected %d framed bytes, got %d", framing.EncodedBytes(len(payload)), len(framed))
				}

				c := NewCollector(framing)
				// trailing garbage must not be consumed once the frame is complete
				consumed := pushAll(c, append(framed, 0xAA, 0x55))
				if !c.Done() {
					t.Fatalf("Expected collector to find the end of the frame")
				}
				if consumed != framing.EncodedBits(len(payload)) {
					t.Errorf("Expected collector to stop after %d bits, stopped after %d", framing.EncodedBits(len(payload)), consumed)
				}
				if !bytes.Equal(c.Payload(), payload) {
					t.Errorf("Expected payload %q, got %q", payload, c.Payload())
				}
			})
		}
	}
}

func TestLengthPrefixedKeepsZeroBytes(t *testing.T) {
	payload := []byte{'a', 0, 'b', 0}
	c := NewCollector(LengthPrefixed)
	pushAll(c, LengthPrefixed.Frame(payload))
	if !bytes.Equal(c.Payload(), payload) {
		t.Errorf("Expected %v, got %v", payload, c.Payload())
	}
}

func TestCollectorLenientWithoutFrameEnd(t *testing.T) {
	t.Run("terminator", func(t *testing.T) {
		c := NewCollector(Terminated)
		pushAll(c, []byte("abc"))
		if c.Done() {
			t.Fatalf("Collector should not be done without a terminator")
		}
		if !bytes.Equal(c.Payload(), []byte("abc")) {
			t.Errorf("Expected best effort payload, got %q", c.Payload())
		}
	})

	t.Run("length prefix", func(t *testing.T) {
		framed := LengthPrefixed.Frame([]byte("abcdef"))
		c := NewCollector(LengthPrefixed)
		pushAll(c, framed[:len(framed)-2])
		if c.Done() {
			t.Fatalf("Collector should not be done with a short body")
		}
		if !bytes.Equal(c.Payload(), []byte("abcd")) {
			t.Errorf("Expected best effort payload, got %q", c.Payload())
		}
	})

	t.Run("length prefix header only", func(t *testing.T) {
		c := NewCollector(LengthPrefixed)
		pushAll(c, []byte{0, 0, 0})
		if len(c.Payload()) != 0 {
			t.Errorf("Expected empty payload, got %q", c.Payload())
		}
	})
}
