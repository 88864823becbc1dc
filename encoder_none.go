package morfologik

// NoEncoder stores payloads verbatim: the identity codec in both
// directions.
type NoEncoder struct{}

// Encode returns a copy of data.
func (NoEncoder) Encode(_, data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decode returns a copy of encoded.
func (NoEncoder) Decode(_, encoded []byte) ([]byte, error) {
	return append([]byte(nil), encoded...), nil
}

// Type returns EncoderNone.
func (NoEncoder) Type() EncoderType { return EncoderNone }
