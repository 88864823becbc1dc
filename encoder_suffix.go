package morfologik

// TrimSuffixEncoder compresses stems sharing a prefix with the inflected
// form. The payload is one byte holding the number of input bytes to drop
// from the end, followed by the tag tail.
type TrimSuffixEncoder struct {
	separator byte
}

// NewTrimSuffixEncoder returns a suffix-trimming codec bound to separator.
func NewTrimSuffixEncoder(separator byte) *TrimSuffixEncoder {
	return &TrimSuffixEncoder{separator: separator}
}

// Encode emits [len(input)-p] followed by the tag, where p is the common
// prefix length of input and stem. It fails when input and stem are both
// non-empty yet share no prefix, or when the trimmed length exceeds 255.
func (e *TrimSuffixEncoder) Encode(input, data []byte) ([]byte, error) {
	stem, tag := splitData(data, e.separator)

	p := commonPrefixLen(input, stem)
	if p == 0 && len(input) > 0 && len(stem) > 0 {
		return nil, decodingErrorf("no common prefix between input %q and stem %q", input, stem)
	}
	trim := len(input) - p
	if trim > 255 {
		return nil, decodingErrorf("suffix to trim exceeds 255 bytes for input %q", input)
	}

	out := make([]byte, 0, 1+len(tag))
	out = append(out, byte(trim))
	return append(out, tag...), nil
}

// Decode drops encoded[0] bytes from the end of input and appends the
// remainder of the payload.
func (e *TrimSuffixEncoder) Decode(input, encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, decodingErrorf("empty payload")
	}
	trim := int(encoded[0])
	if trim > len(input) {
		return nil, decodingErrorf("cannot trim %d bytes from input of length %d", trim, len(input))
	}

	stem := input[:len(input)-trim]
	out := make([]byte, 0, len(stem)+len(encoded)-1)
	out = append(out, stem...)
	return append(out, encoded[1:]...), nil
}

// Type returns EncoderSuffix.
func (e *TrimSuffixEncoder) Type() EncoderType { return EncoderSuffix }
