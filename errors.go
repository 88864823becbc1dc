package morfologik

import "fmt"

// MetadataNotFoundError indicates a missing `.info` companion file.
type MetadataNotFoundError struct {
	Path string
}

func (e *MetadataNotFoundError) Error() string {
	return "dictionary metadata not found: " + e.Path
}

// InvalidMetadataValueError indicates a `.info` value that cannot be
// interpreted: a multi-byte separator, an unknown encoder name, or an
// unresolvable charset.
type InvalidMetadataValueError struct {
	Msg string
}

func (e *InvalidMetadataValueError) Error() string {
	return "invalid metadata value: " + e.Msg
}

// ConfigurationError indicates a dictionary that cannot be assembled from
// its parts (for example, empty embedded resources).
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "dictionary configuration error: " + e.Msg
}

// SequenceDecodingError indicates an encoder contract violation: a length
// byte pointing past the input, a payload shorter than its fixed header,
// or an unencodable (input, data) pair.
type SequenceDecodingError struct {
	Msg string
}

func (e *SequenceDecodingError) Error() string {
	return "sequence decoding error: " + e.Msg
}

func decodingErrorf(format string, args ...any) error {
	return &SequenceDecodingError{Msg: fmt.Sprintf(format, args...)}
}
