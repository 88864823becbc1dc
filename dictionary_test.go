package morfologik

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/morfologik/fsa"
)

func minimalFSA5Bytes() []byte {
	data := append(append([]byte{}, fsa.Magic[:]...), fsa.VersionFSA5, 1, 1)
	return binary.LittleEndian.AppendUint16(data, 0)
}

func minimalCFSA2Bytes() []byte {
	data := append(append([]byte{}, fsa.Magic[:]...), fsa.VersionCFSA2)
	return binary.LittleEndian.AppendUint16(data, 0)
}

func infoBytes(sep string, encoder EncoderType) []byte {
	return []byte(
		"fsa.dict.separator = " + sep + "\n" +
			"fsa.dict.encoding = UTF-8\n" +
			"fsa.dict.encoder = " + encoder.String() + "\n" +
			"fsa.version = FSA5\n")
}

func TestFromBytes_FSA5(t *testing.T) {
	dict, err := FromBytes(minimalFSA5Bytes(), infoBytes("+", EncoderNone))
	require.NoError(t, err)
	defer dict.Close()

	assert.Equal(t, byte('+'), dict.Separator())
	assert.Equal(t, EncoderNone, dict.Encoder().Type())
	assert.IsType(t, &fsa.FSA5{}, dict.Automaton())
	assert.Equal(t, fsa.Node(0), dict.Automaton().Root())
}

func TestFromBytes_CFSA2(t *testing.T) {
	dict, err := FromBytes(minimalCFSA2Bytes(), infoBytes("|", EncoderSuffix))
	require.NoError(t, err)
	defer dict.Close()

	assert.Equal(t, byte('|'), dict.Separator())
	assert.Equal(t, EncoderSuffix, dict.Encoder().Type())
	assert.IsType(t, &fsa.CFSA2{}, dict.Automaton())
}

func TestFromBytes_UnsupportedVersion(t *testing.T) {
	data := append(append([]byte{}, fsa.Magic[:]...), 3, 1, 1, 0, 0)
	_, err := FromBytes(data, infoBytes("+", EncoderNone))

	var verr *fsa.UnsupportedVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, byte(3), verr.Version)
}

func TestFromBytes_BadSeparator(t *testing.T) {
	_, err := FromBytes(minimalFSA5Bytes(), []byte("fsa.dict.separator = ab\n"))

	var verr *InvalidMetadataValueError
	require.ErrorAs(t, err, &verr)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "test.dict")
	require.NoError(t, os.WriteFile(dictPath, minimalFSA5Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.info"), infoBytes("+", EncoderNone), 0o644))

	dict, err := FromFile(dictPath)
	require.NoError(t, err)
	defer dict.Close()

	assert.Equal(t, byte('+'), dict.Separator())
	assert.Equal(t, EncoderNone, dict.Encoder().Type())
	assert.Equal(t, "UTF-8", dict.Metadata().Encoding())
}

func TestFromFile_MissingInfo(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "test.dict")
	require.NoError(t, os.WriteFile(dictPath, minimalFSA5Bytes(), 0o644))

	_, err := FromFile(dictPath)
	var merr *MetadataNotFoundError
	require.ErrorAs(t, err, &merr)
}

func TestFromFile_MissingDict(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "test.dict")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.info"), infoBytes("+", EncoderNone), 0o644))

	_, err := FromFile(dictPath)
	require.Error(t, err)
}

// A dictionary loaded from disk behaves identically to one built from the
// same bytes in memory.
func TestFromFile_MatchesFromBytes(t *testing.T) {
	dictBytes := buildFSA5(t,
		concat([]byte("kotami"), []byte{3, '+', 'N', 'P', 'l'}),
		concat([]byte("domu"), []byte{1, '+', 'N'}),
	)
	info := infoBytes("+", EncoderSuffix)

	dir := t.TempDir()
	dictPath := filepath.Join(dir, "words.dict")
	require.NoError(t, os.WriteFile(dictPath, dictBytes, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.info"), info, 0o644))

	fromFile, err := FromFile(dictPath)
	require.NoError(t, err)
	defer fromFile.Close()
	fromBytes, err := FromBytes(dictBytes, info)
	require.NoError(t, err)

	for _, word := range []string{"kotami", "domu", "pies", ""} {
		a, err := NewLookup(fromFile).Lookup([]byte(word))
		require.NoError(t, err)
		b, err := NewLookup(fromBytes).Lookup([]byte(word))
		require.NoError(t, err)
		if diff := cmp.Diff(a, b, cmp.AllowUnexported(WordData{})); diff != "" {
			t.Errorf("lookup(%q) differs between file and bytes (-file +bytes):\n%s", word, diff)
		}
	}
}

func TestDictionary_CloseIsIdempotent(t *testing.T) {
	dict, err := FromBytes(minimalFSA5Bytes(), infoBytes("+", EncoderNone))
	require.NoError(t, err)
	require.NoError(t, dict.Close())
	require.NoError(t, dict.Close())
}
