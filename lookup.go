package morfologik

import (
	"bytes"
	"errors"

	"github.com/coregx/morfologik/fsa"
)

// Stemmer finds base forms and tags for inflected words.
type Stemmer interface {
	// Lookup returns every interpretation recorded for word, or an empty
	// slice when the word is not in the dictionary. Input bytes must be
	// in the dictionary's charset.
	Lookup(word []byte) ([]WordData, error)

	// Metadata returns the metadata of the dictionary in use.
	Metadata() *Metadata
}

// Lookup resolves words against a dictionary. It holds no mutable state:
// a single Lookup may serve concurrent callers.
type Lookup struct {
	dict *Dictionary
}

// NewLookup returns a stemmer over the given dictionary.
func NewLookup(dict *Dictionary) *Lookup {
	return &Lookup{dict: dict}
}

// Lookup walks the automaton with word, byte by byte; from the reached
// state it streams every payload and decodes each through the dictionary's
// encoder. Words absent from the automaton (and empty input) produce an
// empty result, never an error. A payload the encoder rejects aborts the
// lookup with its error rather than silently yielding wrong data.
func (l *Lookup) Lookup(word []byte) ([]WordData, error) {
	if len(word) == 0 {
		return nil, nil
	}

	a := l.dict.Automaton()
	encoder := l.dict.Encoder()
	separator := l.dict.Separator()

	node := a.Root()
	for _, b := range word {
		arc, err := a.ArcForLabel(node, b)
		if err != nil {
			if isMissingPath(err) {
				return nil, nil
			}
			return nil, err
		}
		node, err = a.EndNode(arc)
		if err != nil {
			return nil, err
		}
	}

	var forms []WordData
	it := fsa.NewIterator(a, node)
	for it.Next() {
		decoded, err := encoder.Decode(word, it.Sequence())
		if err != nil {
			return nil, err
		}
		stem, tag := splitDecoded(decoded, separator)
		forms = append(forms, WordData{
			word: append([]byte(nil), word...),
			stem: stem,
			tag:  tag,
		})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return forms, nil
}

// Metadata returns the metadata of the dictionary in use.
func (l *Lookup) Metadata() *Metadata {
	return l.dict.Metadata()
}

// isMissingPath reports whether err only means the word leaves the
// automaton: no arc for a byte, or a childless leaf mid-word.
func isMissingPath(err error) bool {
	var notFound *fsa.ArcNotFoundError
	var invalidNode *fsa.InvalidNodeOffsetError
	return errors.As(err, &notFound) || errors.As(err, &invalidNode)
}

// splitDecoded splits a decoded entry on the first separator byte. An
// empty portion on either side is reported as absent; without a separator
// the whole entry is the stem.
func splitDecoded(decoded []byte, separator byte) (stem, tag []byte) {
	i := bytes.IndexByte(decoded, separator)
	if i < 0 {
		if len(decoded) == 0 {
			return nil, nil
		}
		return decoded, nil
	}
	stemPart := decoded[:i]
	tagPart := decoded[i+1:]
	if len(stemPart) > 0 {
		stem = stemPart
	}
	if len(tagPart) > 0 {
		tag = tagPart
	}
	return stem, tag
}
