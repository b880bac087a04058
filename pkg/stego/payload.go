package stego

// PayloadFromText maps each character of text to one byte. Characters above U+00FF keep only their low byte, so text
// outside Latin-1 does not survive a round trip.
func PayloadFromText(text string) []byte {
	payload := make([]byte, 0, len(text))
	for _, r := range text {
		payload = append(payload, byte(r))
	}
	return payload
}

// TextFromPayload maps each byte to the character with the same code point.
func TextFromPayload(payload []byte) string {
	runes := make([]rune, len(payload))
	for i, b := range payload {
		runes[i] = rune(b)
	}
	return string(runes)
}
