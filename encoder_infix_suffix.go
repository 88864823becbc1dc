package morfologik

// TrimInfixSuffixEncoder stores an explicit infix replacement: the payload
// is [p, r] followed by the replacement bytes and the tag, where the input
// keeps its first p bytes, drops the next r, and keeps the rest.
//
// Metadata files cannot select this codec: it shares the INFIX tag with
// TrimPrefixSuffixEncoder, which the INFIX value resolves to. It can still
// be constructed directly for dictionaries built with an explicit
// replacement layout. Its decode output interleaves the payload tail
// between the kept prefix and the kept suffix of the input.
type TrimInfixSuffixEncoder struct {
	separator byte
}

// NewTrimInfixSuffixEncoder returns an infix-replacement codec bound to
// separator.
func NewTrimInfixSuffixEncoder(separator byte) *TrimInfixSuffixEncoder {
	return &TrimInfixSuffixEncoder{separator: separator}
}

// Encode emits [p, r], the stem bytes replacing the dropped input portion,
// and the tag. p is the common prefix length of input and stem; r is the
// length of the input remainder not covered by the common suffix of the
// remainders.
func (e *TrimInfixSuffixEncoder) Encode(input, data []byte) ([]byte, error) {
	stem, tag := splitData(data, e.separator)

	p := commonPrefixLen(input, stem)
	inputRest := input[p:]
	stemRest := stem[p:]
	s := commonSuffixLen(inputRest, stemRest)

	r := len(inputRest) - s
	infix := stemRest[:len(stemRest)-s]
	if p > 255 || r > 255 {
		return nil, decodingErrorf("prefix or replaced-infix length exceeds 255 bytes for input %q", input)
	}

	out := make([]byte, 0, 2+len(infix)+len(tag))
	out = append(out, byte(p), byte(r))
	out = append(out, infix...)
	return append(out, tag...), nil
}

// Decode keeps the first p bytes of input, inserts everything past the two
// length bytes, and appends the input past p+r.
func (e *TrimInfixSuffixEncoder) Decode(input, encoded []byte) ([]byte, error) {
	if len(encoded) < 2 {
		return nil, decodingErrorf("payload shorter than its two length bytes")
	}
	p := int(encoded[0])
	r := int(encoded[1])
	if p > len(input) || p+r > len(input) {
		return nil, decodingErrorf("cannot drop %d bytes at offset %d from input of length %d",
			r, p, len(input))
	}

	out := make([]byte, 0, len(input)-r+len(encoded)-2)
	out = append(out, input[:p]...)
	out = append(out, encoded[2:]...)
	return append(out, input[p+r:]...), nil
}

// Type returns EncoderInfix; the tag is shared with
// TrimPrefixSuffixEncoder.
func (e *TrimInfixSuffixEncoder) Type() EncoderType { return EncoderInfix }
