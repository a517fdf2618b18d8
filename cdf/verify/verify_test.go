package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cdfkit/internal/format"
)

// header builds a 1000-byte buffer with the given register values.
func header(t *testing.T, r0, r1, r2, r3 uint32) []byte {
	t.Helper()
	data := make([]byte, 1000)
	format.PutU32(data, format.RegR0Offset, r0)
	format.PutU32(data, format.RegR1Offset, r1)
	format.PutU32(data, format.RegR2Offset, r2)
	format.PutU32(data, format.RegR3Offset, r3)
	return data
}

func TestCheckConsistentHeader(t *testing.T) {
	// R3=100 >= 0x28, so R1 must be 100-0x28 = 60.
	data := header(t, 1000, 60, 900, 100)

	r, err := Check(data)
	require.NoError(t, err)
	require.True(t, r.Ok(), "failures: %v", r.Failures)
	require.Equal(t, 1000, r.FileLength)
	require.Equal(t, uint32(100), r.Registers.R3)
}

func TestCheckStaleEndLength(t *testing.T) {
	// Only R2 is wrong: exactly C2 and C4 must fail.
	data := header(t, 1000, 60, 800, 100)

	r, err := Check(data)
	require.NoError(t, err)
	require.Len(t, r.Failures, 2)
	require.True(t, r.Failed(CheckEndLength))
	require.True(t, r.Failed(CheckEndGeometry))
	require.False(t, r.Failed(CheckFileLength))
	require.False(t, r.Failed(CheckMidLength))
	require.False(t, r.Failed(CheckEndStart))

	for _, f := range r.Failures {
		switch f.Check {
		case CheckEndLength:
			require.Equal(t, uint64(900), f.Expected)
			require.Equal(t, uint64(800), f.Actual)
		case CheckEndGeometry:
			require.Equal(t, uint64(1000), f.Expected)
			require.Equal(t, uint64(900), f.Actual)
		}
	}
}

func TestCheckStaleFileLength(t *testing.T) {
	data := header(t, 999, 60, 900, 100)

	r, err := Check(data)
	require.NoError(t, err)
	require.Len(t, r.Failures, 1)
	require.True(t, r.Failed(CheckFileLength))
}

func TestCheckMidLengthSkippedForLowEndStart(t *testing.T) {
	// R3 below 0x28: C1 is skipped entirely, but C2/C4 still evaluate.
	data := header(t, 1000, 12345, 980, 20)

	r, err := Check(data)
	require.NoError(t, err)
	require.False(t, r.Failed(CheckMidLength), "C1 must be skipped when R3 < 0x28")
	require.True(t, r.Ok(), "failures: %v", r.Failures)
}

func TestCheckEndStartBeyondFile(t *testing.T) {
	data := header(t, 1000, 60, 900, 2000)

	r, err := Check(data)
	require.NoError(t, err)
	require.True(t, r.Failed(CheckEndStart))
	// C2 is not computable with R3 past the end; C4 still cross-checks.
	require.False(t, r.Failed(CheckEndLength))
	require.True(t, r.Failed(CheckEndGeometry))
	// R1 is checked against the (implausible but >= 0x28) R3.
	require.True(t, r.Failed(CheckMidLength))
}

func TestCheckTruncatedFile(t *testing.T) {
	_, err := Check(make([]byte, 0x20))
	require.ErrorIs(t, err, format.ErrTruncated)
}
