package morfologik

// TrimPrefixEncoder compresses stems sharing a suffix with the inflected
// form. The payload is one byte holding the number of input bytes to drop
// from the front, followed by the tag tail.
type TrimPrefixEncoder struct {
	separator byte
}

// NewTrimPrefixEncoder returns a prefix-trimming codec bound to separator.
func NewTrimPrefixEncoder(separator byte) *TrimPrefixEncoder {
	return &TrimPrefixEncoder{separator: separator}
}

// Encode emits [len(input)-s] followed by the tag, where s is the common
// suffix length of input and stem.
func (e *TrimPrefixEncoder) Encode(input, data []byte) ([]byte, error) {
	stem, tag := splitData(data, e.separator)

	s := commonSuffixLen(input, stem)
	if s == 0 && len(input) > 0 && len(stem) > 0 {
		return nil, decodingErrorf("no common suffix between input %q and stem %q", input, stem)
	}
	trim := len(input) - s
	if trim > 255 {
		return nil, decodingErrorf("prefix to trim exceeds 255 bytes for input %q", input)
	}

	out := make([]byte, 0, 1+len(tag))
	out = append(out, byte(trim))
	return append(out, tag...), nil
}

// Decode drops encoded[0] bytes from the front of input and appends the
// remainder of the payload.
func (e *TrimPrefixEncoder) Decode(input, encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, decodingErrorf("empty payload")
	}
	trim := int(encoded[0])
	if trim > len(input) {
		return nil, decodingErrorf("cannot trim %d bytes from input of length %d", trim, len(input))
	}

	stem := input[trim:]
	out := make([]byte, 0, len(stem)+len(encoded)-1)
	out = append(out, stem...)
	return append(out, encoded[1:]...), nil
}

// Type returns EncoderPrefix.
func (e *TrimPrefixEncoder) Type() EncoderType { return EncoderPrefix }
