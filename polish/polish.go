// Package polish packages an embedded Polish dictionary behind the
// Stemmer interface. It is a thin front over the generic dictionary
// machinery; the embedded resources are a small sample of noun forms.
package polish

import (
	_ "embed"

	"github.com/coregx/morfologik"
)

//go:embed resources/polish.dict
var dictBytes []byte

//go:embed resources/polish.info
var infoBytes []byte

// Stemmer finds base forms and tags for Polish words.
type Stemmer struct {
	lookup *morfologik.Lookup
}

// New loads the embedded dictionary.
func New() (*Stemmer, error) {
	if len(dictBytes) == 0 || len(infoBytes) == 0 {
		return nil, &morfologik.ConfigurationError{Msg: "embedded dictionary resources are empty"}
	}
	dict, err := morfologik.FromBytes(dictBytes, infoBytes)
	if err != nil {
		return nil, err
	}
	return &Stemmer{lookup: morfologik.NewLookup(dict)}, nil
}

// FromPath loads a Polish dictionary from a `.dict` file on disk instead
// of the embedded one.
func FromPath(dictPath string) (*Stemmer, error) {
	dict, err := morfologik.FromFile(dictPath)
	if err != nil {
		return nil, err
	}
	return &Stemmer{lookup: morfologik.NewLookup(dict)}, nil
}

// Lookup returns every interpretation recorded for word.
func (s *Stemmer) Lookup(word []byte) ([]morfologik.WordData, error) {
	return s.lookup.Lookup(word)
}

// Metadata returns the metadata of the dictionary in use.
func (s *Stemmer) Metadata() *morfologik.Metadata {
	return s.lookup.Metadata()
}
