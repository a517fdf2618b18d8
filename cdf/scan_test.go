package cdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAllPlantedMarkers(t *testing.T) {
	marker := []byte{0xDE, 0xAD}
	data := make([]byte, 64)
	for _, off := range []int{3, 17, 50} {
		copy(data[off:], marker)
	}

	offs, err := FindAll(data, marker)
	require.NoError(t, err)
	require.Equal(t, []int{3, 17, 50}, offs)
}

func TestFindAllOverlapping(t *testing.T) {
	offs, err := FindAll([]byte("AAA"), []byte("AA"))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, offs, "overlapping matches must both be reported")
}

func TestFindAllNoMatch(t *testing.T) {
	offs, err := FindAll([]byte{1, 2, 3}, []byte{9})
	require.NoError(t, err)
	require.Empty(t, offs, "no match is a normal outcome, not an error")
}

func TestFindAllEmptyMarker(t *testing.T) {
	_, err := FindAll([]byte{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestScannerReset(t *testing.T) {
	s, err := NewScanner([]byte{7, 0, 7, 0, 7}, []byte{7})
	require.NoError(t, err)

	var first []int
	for off, ok := s.Next(); ok; off, ok = s.Next() {
		first = append(first, off)
	}
	require.Equal(t, []int{0, 2, 4}, first)

	// Exhausted scanner stays exhausted.
	_, ok := s.Next()
	require.False(t, ok)

	s.Reset()
	var second []int
	for off, ok := s.Next(); ok; off, ok = s.Next() {
		second = append(second, off)
	}
	require.Equal(t, first, second, "Reset must make the scan restartable")
}

func TestScannerMarkerAtEnd(t *testing.T) {
	offs, err := FindAll([]byte{0, 0, 0xAB, 0xCD}, []byte{0xAB, 0xCD})
	require.NoError(t, err)
	require.Equal(t, []int{2}, offs)
}

func TestScannerMarkerLongerThanBuffer(t *testing.T) {
	offs, err := FindAll([]byte{1}, []byte{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, offs)

	var errIs error = ErrInvalidDefinition
	_, err = NewScanner(nil, nil)
	require.True(t, errors.Is(err, errIs))
}
