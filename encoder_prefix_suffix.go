package morfologik

import "bytes"

// TrimPrefixSuffixEncoder compresses stems that occur inside the inflected
// form: the payload is two bytes holding the prefix and suffix lengths to
// drop from the input, followed by the tag tail. This is the codec behind
// the INFIX metadata value.
type TrimPrefixSuffixEncoder struct {
	separator byte
}

// NewTrimPrefixSuffixEncoder returns a prefix-and-suffix-trimming codec
// bound to separator.
func NewTrimPrefixSuffixEncoder(separator byte) *TrimPrefixSuffixEncoder {
	return &TrimPrefixSuffixEncoder{separator: separator}
}

// Encode locates the stem inside the input and emits [p, s] followed by
// the tag, where p bytes are dropped from the front of the input and s
// from the end. It fails when the stem does not occur in the input or
// either length exceeds 255.
func (e *TrimPrefixSuffixEncoder) Encode(input, data []byte) ([]byte, error) {
	stem, tag := splitData(data, e.separator)

	p := bytes.Index(input, stem)
	if p < 0 {
		return nil, decodingErrorf("stem %q does not occur in input %q", stem, input)
	}
	s := len(input) - p - len(stem)
	if p > 255 || s > 255 {
		return nil, decodingErrorf("prefix or suffix to trim exceeds 255 bytes for input %q", input)
	}

	out := make([]byte, 0, 2+len(tag))
	out = append(out, byte(p), byte(s))
	return append(out, tag...), nil
}

// Decode drops encoded[0] bytes from the front and encoded[1] bytes from
// the end of input and appends the remainder of the payload.
func (e *TrimPrefixSuffixEncoder) Decode(input, encoded []byte) ([]byte, error) {
	if len(encoded) < 2 {
		return nil, decodingErrorf("payload shorter than its two length bytes")
	}
	p := int(encoded[0])
	s := int(encoded[1])
	if p+s > len(input) {
		return nil, decodingErrorf("cannot trim %d+%d bytes from input of length %d", p, s, len(input))
	}

	stem := input[p : len(input)-s]
	out := make([]byte, 0, len(stem)+len(encoded)-2)
	out = append(out, stem...)
	return append(out, encoded[2:]...), nil
}

// Type returns EncoderInfix.
func (e *TrimPrefixSuffixEncoder) Type() EncoderType { return EncoderInfix }
