// Package morfologik provides morphological analysis (stemming and tagging)
// over immutable FSA dictionaries.
//
// A dictionary is the pair of a `.dict` automaton file (read by package fsa)
// and a `.info` metadata file describing its separator, character encoding
// and sequence encoder. Lookups walk the automaton with the inflected word
// and decode every payload found below the reached state:
//
//	dict, err := morfologik.FromFile("polish.dict")
//	if err != nil {
//	    return err
//	}
//	defer dict.Close()
//
//	stemmer := morfologik.NewLookup(dict)
//	forms, err := stemmer.Lookup([]byte("kotami"))
//
// A Dictionary is immutable after loading and safe to share between
// goroutines; concurrent lookups cannot interfere.
package morfologik

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// EncoderType identifies the difference codec used for dictionary payloads.
type EncoderType uint8

const (
	// EncoderNone stores payloads verbatim.
	EncoderNone EncoderType = iota

	// EncoderPrefix trims a prefix of the inflected form.
	EncoderPrefix

	// EncoderInfix trims both a prefix and a suffix of the inflected form.
	EncoderInfix

	// EncoderSuffix trims a suffix of the inflected form.
	EncoderSuffix
)

// String returns the metadata spelling of the encoder type.
func (t EncoderType) String() string {
	switch t {
	case EncoderNone:
		return "NONE"
	case EncoderPrefix:
		return "PREFIX"
	case EncoderInfix:
		return "INFIX"
	case EncoderSuffix:
		return "SUFFIX"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// ParseEncoderType interprets a metadata encoder value. Matching is
// case-insensitive and tolerates surrounding whitespace.
func ParseEncoderType(s string) (EncoderType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return EncoderNone, nil
	case "PREFIX":
		return EncoderPrefix, nil
	case "INFIX":
		return EncoderInfix, nil
	case "SUFFIX":
		return EncoderSuffix, nil
	default:
		return 0, &InvalidMetadataValueError{Msg: "unknown encoder type: " + s}
	}
}

// Recognized metadata keys. Additional keys are accepted and preserved but
// not interpreted.
const (
	// AttrSeparator is the byte separating stem from tag ("fsa.dict.separator").
	AttrSeparator = "fsa.dict.separator"

	// AttrEncoding is the IANA charset name of the dictionary ("fsa.dict.encoding").
	AttrEncoding = "fsa.dict.encoding"

	// AttrEncoder is the sequence encoder name ("fsa.dict.encoder").
	AttrEncoder = "fsa.dict.encoder"

	// AttrVersion is an informational format tag ("fsa.version"); it is not
	// required to match the binary version byte.
	AttrVersion = "fsa.version"
)

// Metadata defaults.
const (
	DefaultSeparator byte   = '\t'
	DefaultEncoding  string = "UTF-8"
	DefaultEncoder         = EncoderSuffix
)

// Metadata is the parsed `.info` key/value map. It is frozen once the
// dictionary that owns it has been loaded.
type Metadata struct {
	attrs map[string]string
}

// NewMetadata returns empty metadata; every accessor falls back to its
// default.
func NewMetadata() *Metadata {
	return &Metadata{attrs: make(map[string]string)}
}

// ParseMetadata reads `key = value` lines from r. Blank lines and lines
// starting with '#' are skipped; keys and values are whitespace-trimmed;
// duplicate keys overwrite (last wins). Lines without '=' are ignored.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	m := NewMetadata()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		m.attrs[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseMetadataBytes parses metadata from an in-memory `.info` image.
func ParseMetadataBytes(info []byte) (*Metadata, error) {
	return ParseMetadata(bytes.NewReader(info))
}

// ReadMetadataFile parses metadata from the `.info` file at path.
func ReadMetadataFile(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata file %q: %w", path, err)
	}
	defer f.Close()
	return ParseMetadata(f)
}

// Get returns the raw value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// Set stores a raw attribute value. It is intended for programmatic
// construction before the metadata is handed to a dictionary.
func (m *Metadata) Set(key, value string) {
	m.attrs[key] = value
}

// Separator returns the single byte separating stem from tag in decoded
// entries. A configured value that is not exactly one byte fails with
// *InvalidMetadataValueError.
func (m *Metadata) Separator() (byte, error) {
	v, ok := m.attrs[AttrSeparator]
	if !ok {
		return DefaultSeparator, nil
	}
	if len(v) != 1 {
		return 0, &InvalidMetadataValueError{
			Msg: fmt.Sprintf("separator %q: expected a single byte", v),
		}
	}
	return v[0], nil
}

// Encoding returns the IANA charset name recorded for the dictionary.
func (m *Metadata) Encoding() string {
	if v, ok := m.attrs[AttrEncoding]; ok {
		return v
	}
	return DefaultEncoding
}

// NewDecoder resolves the recorded charset through the IANA index and
// returns a decoder for it. The core operates on raw bytes; this is for
// upstream presentation of stems and tags.
func (m *Metadata) NewDecoder() (*encoding.Decoder, error) {
	name := m.Encoding()
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &InvalidMetadataValueError{Msg: "unresolvable charset: " + name}
	}
	return enc.NewDecoder(), nil
}

// Encoder returns the configured sequence encoder type.
func (m *Metadata) Encoder() (EncoderType, error) {
	v, ok := m.attrs[AttrEncoder]
	if !ok {
		return DefaultEncoder, nil
	}
	return ParseEncoderType(v)
}
