package bits

// Terminator marks the end of a legacy framed payload. Being a plain zero byte it is indistinguishable from a payload
// byte of value 0, so payloads containing 0 are cut short on decode.
const Terminator = byte(0)

// Encode maps each payload byte to its 8 bit big-endian representation and appends the all-zero terminator byte.
func Encode(payload []byte) []uint8 {
	br := NewBitReader(Terminated.Frame(payload))
	bitSeq := make([]uint8, 0, br.BitsLeftToRead())
	for br.BitsLeftToRead() > 0 {
		bitSeq = append(bitSeq, br.ReadBit())
	}
	return bitSeq
}

// Decode groups bits by 8 and stops at the first all-zero group. Without a terminator every complete group is
// decoded and a trailing partial group is dropped.
func Decode(bitSeq []uint8) []byte {
	c := NewCollector(Terminated)
	for _, bit := range bitSeq {
		if c.Push(bit) {
			break
		}
	}
	return c.Payload()
}
