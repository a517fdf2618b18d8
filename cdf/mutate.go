package cdf

import (
	"fmt"

	"github.com/joshuapare/cdfkit/internal/buf"
	"github.com/joshuapare/cdfkit/internal/format"
)

// In-place mutation primitives. Both operations share one top-level
// guarantee: the payload byte length never changes, so no other offset in the
// buffer shifts. All validation happens before the first byte is written; on
// any error the buffer is byte-for-byte untouched.

// ApplyScalar encodes vals per the occurrence's layout and overwrites exactly
// the payload bytes. The previous payload bytes are returned so the caller
// can revert by re-applying them with ApplyRaw.
func ApplyScalar(data []byte, occ *Occurrence, vals []Value) ([]byte, error) {
	if occ.Err != nil {
		return nil, fmt.Errorf("cannot edit unreadable occurrence %s: %w", occ.Label(), occ.Err)
	}
	layout := occ.Def.Layout
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: %s is a marker-only field with no payload", ErrLengthMismatch, occ.Label())
	}
	if len(vals) != len(layout) {
		return nil, fmt.Errorf("%w: %s wants %d value(s), got %d", ErrLengthMismatch, occ.Label(), len(layout), len(vals))
	}

	enc := make([]byte, 0, layout.Width())
	for i, v := range vals {
		if v.Kind() != layout[i] {
			return nil, fmt.Errorf("%w: value %d of %s is %s, layout wants %s",
				ErrValueOutOfRange, i, occ.Label(), v.Kind(), layout[i])
		}
		enc = append(enc, format.EncodeScalar(v)...)
	}

	return overwrite(data, occ.PayloadOffset, enc)
}

// ApplyRaw overwrites an explicit byte range, the hex-editor path. expect is
// the declared length of the target range; a new byte slice of any other
// length is rejected before anything is written.
func ApplyRaw(data []byte, off, expect int, newBytes []byte) ([]byte, error) {
	if expect < 0 {
		return nil, fmt.Errorf("%w: negative range length %d", ErrOutOfBounds, expect)
	}
	if len(newBytes) != expect {
		return nil, fmt.Errorf("%w: target is %d byte(s) but %d were provided",
			ErrLengthMismatch, expect, len(newBytes))
	}
	return overwrite(data, off, newBytes)
}

// ApplyRawField overwrites the payload of a field-bound occurrence with raw
// bytes, enforcing the occurrence's payload width.
func ApplyRawField(data []byte, occ *Occurrence, newBytes []byte) ([]byte, error) {
	if occ.Err != nil {
		return nil, fmt.Errorf("cannot edit unreadable occurrence %s: %w", occ.Label(), occ.Err)
	}
	return ApplyRaw(data, occ.PayloadOffset, occ.Width(), newBytes)
}

func overwrite(data []byte, off int, newBytes []byte) ([]byte, error) {
	target, ok := buf.Slice(data, off, len(newBytes))
	if !ok {
		return nil, fmt.Errorf("%w: %d byte(s) at 0x%X (buffer is %d bytes)",
			ErrOutOfBounds, len(newBytes), off, len(data))
	}
	prev := append([]byte(nil), target...)
	copy(target, newBytes)
	return prev, nil
}
