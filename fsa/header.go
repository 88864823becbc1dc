package fsa

import "bytes"

// headerSize is the length of the common header: four magic bytes plus the
// version byte. Format-specific fields follow immediately after.
const headerSize = 5

// Header is the common prefix of every FSA dictionary file.
type Header struct {
	Version byte
}

// ReadHeader validates the magic sequence and the version byte at the start
// of data. It inspects exactly the first five bytes; the remainder is left
// for the format-specific reader.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < len(Magic) {
		return Header{}, ErrUnexpectedEOF
	}
	if !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return Header{}, ErrInvalidMagic
	}
	if len(data) < headerSize {
		return Header{}, ErrUnexpectedEOF
	}
	version := data[len(Magic)]
	switch version {
	case VersionFSA5, VersionCFSA2:
		return Header{Version: version}, nil
	default:
		return Header{}, &UnsupportedVersionError{Version: version}
	}
}

// New reads the header of data and constructs the matching reader. The
// format is resolved exactly once, here; arc operations never branch on it.
func New(data []byte) (Automaton, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	switch h.Version {
	case VersionFSA5:
		return NewFSA5(data)
	default:
		return NewCFSA2(data)
	}
}
