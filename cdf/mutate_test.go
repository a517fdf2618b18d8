package cdf

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func indexFor(t *testing.T, data []byte) []Occurrence {
	t.Helper()
	occs, err := BuildIndex(data, testCatalog())
	require.NoError(t, err)
	return occs
}

func TestApplyScalarOverwritesPayloadOnly(t *testing.T) {
	data := testBuffer(t)
	want := append([]byte(nil), data...)
	occs := indexFor(t, data)
	answer := &occs[0]

	prev, err := ApplyScalar(data, answer, []Value{Int32Value(100)})
	require.NoError(t, err)
	require.Equal(t, []byte{0x2A, 0x00, 0x00, 0x00}, prev)

	// Expected image differs in exactly the 4 payload bytes.
	copy(want[answer.PayloadOffset:], []byte{0x64, 0x00, 0x00, 0x00})
	require.Equal(t, want, data)
}

func TestApplyScalarLengthInvariance(t *testing.T) {
	data := testBuffer(t)
	occs := indexFor(t, data)
	before := len(data)

	for i := range occs {
		if len(occs[i].Def.Layout) == 0 || occs[i].Err != nil {
			continue
		}
		vals := make([]Value, len(occs[i].Def.Layout))
		for j, k := range occs[i].Def.Layout {
			v, err := ValueFromInt(k, 1)
			require.NoError(t, err)
			vals[j] = v
		}
		_, err := ApplyScalar(data, &occs[i], vals)
		require.NoError(t, err)
		require.Len(t, data, before)
	}
}

func TestApplyScalarRevertExactness(t *testing.T) {
	data := testBuffer(t)
	pristine := append([]byte(nil), data...)
	occs := indexFor(t, data)
	pair := &occs[2]

	prev, err := ApplyScalar(data, pair, []Value{ByteValue(9), Float32Value(-3.5)})
	require.NoError(t, err)
	require.NotEqual(t, pristine, data)

	// Re-applying the returned bytes is a pure undo.
	_, err = ApplyRawField(data, pair, prev)
	require.NoError(t, err)
	require.Equal(t, pristine, data)
}

func TestApplyScalarFailuresLeaveBufferUntouched(t *testing.T) {
	data := testBuffer(t)
	occs := indexFor(t, data)
	answer := &occs[0]
	digest := xxhash.Sum64(data)

	// Arity mismatch.
	_, err := ApplyScalar(data, answer, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)

	// Kind mismatch.
	_, err = ApplyScalar(data, answer, []Value{ByteValue(1)})
	require.ErrorIs(t, err, ErrValueOutOfRange)

	require.Equal(t, digest, xxhash.Sum64(data), "failed mutations must be byte-exact no-ops")
}

func TestApplyScalarMarkerOnlyField(t *testing.T) {
	data := append(make([]byte, 4), 0x28, 0x00, 0x9D)
	cat := Catalog{def("GENERAL", "Preset", "28 00 9D", nil)}
	occs, err := BuildIndex(data, cat)
	require.NoError(t, err)

	_, err = ApplyScalar(data, &occs[0], nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestApplyScalarTruncatedOccurrence(t *testing.T) {
	data := append(make([]byte, 8), 0xDE, 0xAD, 0xBE, 0xEF, 0x01)
	cat := Catalog{def("ALPHA", "Answer", "DE AD BE EF", Layout{Int32})}
	occs, err := BuildIndex(data, cat)
	require.NoError(t, err)
	digest := xxhash.Sum64(data)

	_, err = ApplyScalar(data, &occs[0], []Value{Int32Value(1)})
	require.Error(t, err)
	require.Equal(t, digest, xxhash.Sum64(data))
}

func TestApplyRaw(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}

	prev, err := ApplyRaw(data, 2, 3, []byte{9, 8, 7})
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, prev)
	require.Equal(t, []byte{0, 1, 9, 8, 7, 5}, data)

	// Revert.
	_, err = ApplyRaw(data, 2, 3, prev)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5}, data)
}

func TestApplyRawLengthMismatch(t *testing.T) {
	data := []byte{0, 1, 2, 3}
	digest := xxhash.Sum64(data)

	_, err := ApplyRaw(data, 0, 2, []byte{9})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ApplyRaw(data, 0, 2, []byte{9, 9, 9})
	require.ErrorIs(t, err, ErrLengthMismatch)

	require.Equal(t, digest, xxhash.Sum64(data))
}

func TestApplyRawOutOfBounds(t *testing.T) {
	data := []byte{0, 1, 2, 3}
	digest := xxhash.Sum64(data)

	_, err := ApplyRaw(data, 3, 2, []byte{9, 9})
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = ApplyRaw(data, -1, 2, []byte{9, 9})
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = ApplyRaw(data, 0, -1, nil)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.Equal(t, digest, xxhash.Sum64(data))
}
