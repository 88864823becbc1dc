package polish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/morfologik"
)

func TestNew_EmbeddedDictionary(t *testing.T) {
	stemmer, err := New()
	require.NoError(t, err)

	sep, err := stemmer.Metadata().Separator()
	require.NoError(t, err)
	assert.Equal(t, byte('+'), sep)

	enc, err := stemmer.Metadata().Encoder()
	require.NoError(t, err)
	assert.Equal(t, morfologik.EncoderSuffix, enc)
}

func TestStemmer_Lookup(t *testing.T) {
	stemmer, err := New()
	require.NoError(t, err)

	tests := []struct {
		word string
		stem string
		tag  string
	}{
		{"kotami", "kot", "n:ins:pl"},
		{"kotem", "kot", "n:ins:sg"},
		{"domu", "dom", "n:gen:sg"},
		{"domy", "dom", "n:nom:pl"},
		{"psa", "psa", "n:gen:sg"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			forms, err := stemmer.Lookup([]byte(tt.word))
			require.NoError(t, err)
			require.Len(t, forms, 1)

			assert.Equal(t, []byte(tt.word), forms[0].Word())
			assert.Equal(t, []byte(tt.stem), forms[0].Stem())
			assert.Equal(t, []byte(tt.tag), forms[0].Tag())
		})
	}
}

func TestStemmer_LookupUnknownWord(t *testing.T) {
	stemmer, err := New()
	require.NoError(t, err)

	forms, err := stemmer.Lookup([]byte("pies"))
	require.NoError(t, err)
	assert.Empty(t, forms)

	forms, err = stemmer.Lookup(nil)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "polish.dict")
	require.NoError(t, os.WriteFile(dictPath, dictBytes, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "polish.info"), infoBytes, 0o644))

	stemmer, err := FromPath(dictPath)
	require.NoError(t, err)

	forms, err := stemmer.Lookup([]byte("kotami"))
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, []byte("kot"), forms[0].Stem())
}

func TestFromPath_MissingDictionary(t *testing.T) {
	_, err := FromPath(filepath.Join(t.TempDir(), "nope.dict"))
	require.Error(t, err)
}
