package morfologik

import "bytes"

// SequenceEncoder translates between dictionary payloads and the
// `stem [separator tag]` strings they compress. Encode is the builder-side
// direction; Decode rebuilds the stem from the inflected word given at
// lookup time and appends the rest of the payload found in the automaton.
// Decode does not re-insert the separator: it appears in the output only
// where the payload itself stores it.
//
// The trimming codecs share the payload shape: a fixed-width header of
// length bytes followed by the payload tail. Length bytes are limited to 0..255;
// differences that do not fit fail encoding with *SequenceDecodingError.
type SequenceEncoder interface {
	// Encode compresses data (stem plus optional separator and tag)
	// against the inflected input.
	Encode(input, data []byte) ([]byte, error)

	// Decode reconstructs stem-plus-tag from the inflected input and the
	// payload stored in the automaton.
	Decode(input, encoded []byte) ([]byte, error)

	// Type returns the metadata tag of this codec.
	Type() EncoderType
}

// NewSequenceEncoder returns the codec configured by the metadata encoder
// type, bound to the dictionary's separator byte.
func NewSequenceEncoder(t EncoderType, separator byte) (SequenceEncoder, error) {
	switch t {
	case EncoderNone:
		return NoEncoder{}, nil
	case EncoderSuffix:
		return &TrimSuffixEncoder{separator: separator}, nil
	case EncoderPrefix:
		return &TrimPrefixEncoder{separator: separator}, nil
	case EncoderInfix:
		return &TrimPrefixSuffixEncoder{separator: separator}, nil
	default:
		return nil, &ConfigurationError{Msg: "unknown encoder type: " + t.String()}
	}
}

// splitData splits a `stem [separator tag]` string on the first separator
// byte. Without a separator the whole string is the stem and the tag is
// empty.
func splitData(data []byte, separator byte) (stem, tag []byte) {
	if i := bytes.IndexByte(data, separator); i >= 0 {
		return data[:i], data[i+1:]
	}
	return data, nil
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b.
func commonPrefixLen(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// commonSuffixLen returns the length of the longest common suffix of a
// and b.
func commonSuffixLen(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
