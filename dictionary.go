package morfologik

import (
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/coregx/morfologik/fsa"
)

// Dictionary bundles an automaton, its metadata and the sequence encoder
// the metadata selects. All three are built once and immutable afterwards,
// so a Dictionary can be shared freely across goroutines and lookups.
type Dictionary struct {
	automaton fsa.Automaton
	metadata  *Metadata
	encoder   SequenceEncoder
	separator byte

	// mapping keeps the `.dict` bytes alive for automata loaded with
	// FromFile; nil for in-memory dictionaries.
	mapping mmap.MMap
}

// InfoPathFor returns the `.info` companion path of a `.dict` file.
func InfoPathFor(dictPath string) string {
	if i := strings.LastIndexByte(dictPath, '.'); i > strings.LastIndexByte(dictPath, os.PathSeparator) {
		return dictPath[:i] + ".info"
	}
	return dictPath + ".info"
}

// FromFile loads the dictionary at dictPath together with its `.info`
// companion. The `.dict` bytes are memory-mapped when possible, falling
// back to a plain read; either way the caller should Close the dictionary
// when done with it.
func FromFile(dictPath string) (*Dictionary, error) {
	infoPath := InfoPathFor(dictPath)
	if _, err := os.Stat(infoPath); err != nil {
		return nil, &MetadataNotFoundError{Path: infoPath}
	}
	metadata, err := ReadMetadataFile(infoPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file %q: %w", dictPath, err)
	}
	defer f.Close()

	mapping, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Zero-length files and exotic filesystems cannot be mapped;
		// fall back to reading into memory.
		data, rerr := os.ReadFile(dictPath)
		if rerr != nil {
			return nil, fmt.Errorf("read dictionary file %q: %w", dictPath, rerr)
		}
		return newDictionary(data, metadata, nil)
	}
	return newDictionary(mapping, metadata, mapping)
}

// FromBytes builds a dictionary from in-memory `.dict` and `.info` images.
// It is functionally identical to FromFile on the same bytes. The
// dictionary aliases dictBytes; callers must not mutate it afterwards.
func FromBytes(dictBytes, infoBytes []byte) (*Dictionary, error) {
	metadata, err := ParseMetadataBytes(infoBytes)
	if err != nil {
		return nil, err
	}
	return newDictionary(dictBytes, metadata, nil)
}

func newDictionary(dictBytes []byte, metadata *Metadata, mapping mmap.MMap) (*Dictionary, error) {
	automaton, err := fsa.New(dictBytes)
	if err != nil {
		return nil, err
	}

	encoderType, err := metadata.Encoder()
	if err != nil {
		return nil, err
	}
	separator, err := metadata.Separator()
	if err != nil {
		return nil, err
	}
	encoder, err := NewSequenceEncoder(encoderType, separator)
	if err != nil {
		return nil, err
	}

	return &Dictionary{
		automaton: automaton,
		metadata:  metadata,
		encoder:   encoder,
		separator: separator,
		mapping:   mapping,
	}, nil
}

// Automaton returns the loaded automaton.
func (d *Dictionary) Automaton() fsa.Automaton { return d.automaton }

// Metadata returns the frozen `.info` attributes.
func (d *Dictionary) Metadata() *Metadata { return d.metadata }

// Encoder returns the sequence codec selected by the metadata.
func (d *Dictionary) Encoder() SequenceEncoder { return d.encoder }

// Separator returns the byte separating stems from tags in decoded
// entries.
func (d *Dictionary) Separator() byte { return d.separator }

// Close releases the file mapping backing a dictionary loaded with
// FromFile. It is a no-op for in-memory dictionaries. The dictionary must
// not be used afterwards.
func (d *Dictionary) Close() error {
	if d.mapping == nil {
		return nil
	}
	mapping := d.mapping
	d.mapping = nil
	return mapping.Unmap()
}
