package morfologik

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLookup(t *testing.T, dictBytes []byte, encoder EncoderType, sep string) *Lookup {
	t.Helper()
	dict, err := FromBytes(dictBytes, infoBytes(sep, encoder))
	require.NoError(t, err)
	return NewLookup(dict)
}

func TestLookup_NoEncoder(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("kot"), []byte("KOT+SUBST")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	forms, err := lookup.Lookup([]byte("kot"))
	require.NoError(t, err)
	require.Len(t, forms, 1)

	assert.Equal(t, []byte("kot"), forms[0].Word())
	assert.Equal(t, []byte("KOT"), forms[0].Stem())
	assert.Equal(t, []byte("SUBST"), forms[0].Tag())
}

func TestLookup_SuffixEncoder(t *testing.T) {
	// The payload keeps the separator at the head of its tag tail, so the
	// decoded entry splits into stem and tag.
	dictBytes := buildFSA5(t,
		concat([]byte("kotami"), []byte{3, '+', 'N', 'P', 'l'}),
	)
	lookup := newTestLookup(t, dictBytes, EncoderSuffix, "+")

	forms, err := lookup.Lookup([]byte("kotami"))
	require.NoError(t, err)
	require.Len(t, forms, 1)

	assert.Equal(t, []byte("kotami"), forms[0].Word())
	assert.Equal(t, []byte("kot"), forms[0].Stem())
	assert.Equal(t, []byte("NPl"), forms[0].Tag())
}

func TestLookup_MultipleInterpretations(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("zamki"), []byte{1, '+', 'N', ':', 'p', 'l'}),
		concat([]byte("zamki"), []byte{2, '+', 'V'}),
	)
	lookup := newTestLookup(t, dictBytes, EncoderSuffix, "+")

	forms, err := lookup.Lookup([]byte("zamki"))
	require.NoError(t, err)
	require.Len(t, forms, 2)

	// DFS order follows the payload bytes: length byte 1 before 2.
	assert.Equal(t, []byte("zamk"), forms[0].Stem())
	assert.Equal(t, []byte("N:pl"), forms[0].Tag())
	assert.Equal(t, []byte("zam"), forms[1].Stem())
	assert.Equal(t, []byte("V"), forms[1].Tag())
}

func TestLookup_WordNotInDictionary(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("jest"), []byte("BYC+VERB")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	forms, err := lookup.Lookup([]byte("nieistnieje"))
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestLookup_EmptyWord(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("a"), []byte("A+X")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	forms, err := lookup.Lookup(nil)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestLookup_NoSeparatorInEntry(t *testing.T) {
	// Without a separator the whole decoded entry is the stem.
	dictBytes := buildFSA5(t,
		concat([]byte("dom"), []byte("DOM")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	forms, err := lookup.Lookup([]byte("dom"))
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, []byte("DOM"), forms[0].Stem())
	assert.Nil(t, forms[0].Tag())
}

func TestLookup_EmptyStemAndTagPortions(t *testing.T) {
	// A separator with nothing before it leaves the stem absent; nothing
	// after it leaves the tag absent.
	dictBytes := buildFSA5(t,
		concat([]byte("x"), []byte("+TAG")),
		concat([]byte("y"), []byte("STEM+")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	forms, err := lookup.Lookup([]byte("x"))
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Nil(t, forms[0].Stem())
	assert.Equal(t, []byte("TAG"), forms[0].Tag())

	forms, err = lookup.Lookup([]byte("y"))
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, []byte("STEM"), forms[0].Stem())
	assert.Nil(t, forms[0].Tag())
}

func TestLookup_CorruptPayloadSurfaces(t *testing.T) {
	// Length byte far past the input: the encoder rejects the entry and
	// the lookup aborts instead of yielding wrong data.
	dictBytes := buildFSA5(t,
		concat([]byte("kot"), []byte{200, '+', 'N'}),
	)
	lookup := newTestLookup(t, dictBytes, EncoderSuffix, "+")

	_, err := lookup.Lookup([]byte("kot"))
	var derr *SequenceDecodingError
	require.ErrorAs(t, err, &derr)
}

func TestLookup_WordOwnership(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("kot"), []byte("KOT+SUBST")),
	)
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	word := []byte("kot")
	forms, err := lookup.Lookup(word)
	require.NoError(t, err)
	require.Len(t, forms, 1)

	word[0] = 'X'
	assert.Equal(t, []byte("kot"), forms[0].Word(), "result must not alias the caller's buffer")
}

func TestLookup_Metadata(t *testing.T) {
	dictBytes := buildFSA5(t, concat([]byte("a"), []byte("A")))
	lookup := newTestLookup(t, dictBytes, EncoderNone, "+")

	sep, err := lookup.Metadata().Separator()
	require.NoError(t, err)
	assert.Equal(t, byte('+'), sep)
}

func TestLookup_ConcurrentUse(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("kotami"), []byte{3, '+', 'N', 'P', 'l'}),
		concat([]byte("domu"), []byte{1, '+', 'N'}),
	)
	lookup := newTestLookup(t, dictBytes, EncoderSuffix, "+")

	want, err := lookup.Lookup([]byte("kotami"))
	require.NoError(t, err)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, err := lookup.Lookup([]byte("kotami"))
				if err != nil {
					done <- err
					return
				}
				if diff := cmp.Diff(want, got, cmp.AllowUnexported(WordData{})); diff != "" {
					done <- assert.AnError
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
