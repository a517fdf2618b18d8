package cdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentEndToEnd(t *testing.T) {
	// A buffer with marker DE AD BE EF followed by int32 42 (LE).
	data := make([]byte, 32)
	copy(data[8:], []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x2A, 0x00, 0x00, 0x00})
	cat := Catalog{def("ALPHA", "Answer", "DE AD BE EF", Layout{Int32})}

	doc, err := FromBytes(data, cat)
	require.NoError(t, err)
	require.Len(t, doc.Occurrences(), 1)

	occ, err := doc.Find("", "Answer", 0)
	require.NoError(t, err)
	require.Equal(t, int32(42), occ.Values[0].Int32())

	want := append([]byte(nil), data...)
	copy(want[12:], []byte{0x64, 0x00, 0x00, 0x00})

	prev, err := doc.Apply(occ, []Value{Int32Value(100)})
	require.NoError(t, err)
	require.Equal(t, []byte{0x2A, 0x00, 0x00, 0x00}, prev)
	require.Equal(t, want, doc.Bytes(), "only the payload bytes may change")

	// Reparse happened: the index shows the new value.
	occ, err = doc.Find("", "Answer", 0)
	require.NoError(t, err)
	require.Equal(t, int32(100), occ.Values[0].Int32())
}

func TestDocumentIsolatedFromInput(t *testing.T) {
	data := make([]byte, 16)
	doc, err := FromBytes(data, nil)
	require.NoError(t, err)

	data[0] = 0xFF
	require.Zero(t, doc.Bytes()[0], "the session owns its own copy of the buffer")
}

func TestDocumentRevertRange(t *testing.T) {
	data := testBuffer(t)
	doc, err := FromBytes(data, testCatalog())
	require.NoError(t, err)

	occ, err := doc.Find("ALPHA", "Answer", 0)
	require.NoError(t, err)

	_, err = doc.Apply(occ, []Value{Int32Value(-500)})
	require.NoError(t, err)
	require.NotEqual(t, data, doc.Bytes())

	require.NoError(t, doc.RevertRange(occ.PayloadOffset, occ.Width()))
	require.Equal(t, data, doc.Bytes())

	require.ErrorIs(t, doc.RevertRange(len(data)-1, 4), ErrOutOfBounds)
}

func TestDocumentDigest(t *testing.T) {
	doc, err := FromBytes(testBuffer(t), testCatalog())
	require.NoError(t, err)
	before := doc.Digest()

	occ, err := doc.Find("BETA", "Flag", 0)
	require.NoError(t, err)

	_, err = doc.Apply(occ, []Value{ByteValue(0x55)})
	require.NoError(t, err)
	require.NotEqual(t, before, doc.Digest())

	require.NoError(t, doc.RevertRange(occ.PayloadOffset, 1))
	require.Equal(t, before, doc.Digest())
}

func TestDocumentFind(t *testing.T) {
	doc, err := FromBytes(testBuffer(t), testCatalog())
	require.NoError(t, err)

	_, err = doc.Find("", "Answer", 1)
	require.NoError(t, err)

	_, err = doc.Find("", "Answer", 2)
	require.Error(t, err)

	_, err = doc.Find("BETA", "Answer", 0)
	require.Error(t, err, "section filter must apply")
}

func TestDocumentLoadAndSaveAs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "car.cdf")
	require.NoError(t, os.WriteFile(src, testBuffer(t), 0o644))

	doc, err := Load(src, testCatalog())
	require.NoError(t, err)
	require.Equal(t, src, doc.Path())

	occ, err := doc.Find("BETA", "Flag", 0)
	require.NoError(t, err)
	_, err = doc.Apply(occ, []Value{ByteValue(0xEE)})
	require.NoError(t, err)

	dst := filepath.Join(dir, "out", "..", "car_edited.cdf")
	require.NoError(t, doc.SaveAs(dst))

	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, doc.Bytes(), written)
	require.Len(t, written, doc.Len(), "save must preserve length exactly")

	// The original file is untouched.
	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, testBuffer(t), orig)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp")
	}
}
