package cdf

import (
	"fmt"

	"github.com/joshuapare/cdfkit/internal/buf"
	"github.com/joshuapare/cdfkit/internal/format"
)

// Occurrence is one concrete hit of a field definition in a buffer. It is a
// derived snapshot: the moment the buffer is mutated the decoded values are
// stale and the index must be rebuilt. Offsets stay valid across mutations
// because edits never change the buffer length.
type Occurrence struct {
	Def *FieldDef

	// Ordinal numbers the hits of the same definition in order of
	// appearance, starting at 0. Together with the definition it forms a
	// stable address for UI selection.
	Ordinal int

	MarkerOffset  int
	PayloadOffset int

	// Raw is a copy of the payload bytes at index-build time. Nil when the
	// payload could not be read (see Err) or the layout is empty.
	Raw []byte

	// Values holds the decoded scalars, one per layout element.
	Values []Value

	// Err is set when the payload could not be decoded, typically because
	// the file is truncated mid-field. The occurrence is still listed so
	// the caller can surface it instead of silently dropping a row.
	Err error
}

// Width returns the payload width in bytes.
func (o *Occurrence) Width() int { return o.Def.Layout.Width() }

// Label returns the display name of the occurrence, e.g. "Mass #0".
func (o *Occurrence) Label() string {
	return fmt.Sprintf("%s #%d", o.Def.Name, o.Ordinal)
}

// BuildIndex scans data for every catalog definition and returns the full
// occurrence list, grouped by section (catalog order), then by definition
// order within each section, then by ascending marker offset. The buffer is
// only read.
//
// A catalog that fails validation is fatal; a field whose payload runs past
// the end of the buffer is reported as an error entry.
func BuildIndex(data []byte, cat Catalog) ([]Occurrence, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	bySection := make(map[string][]int)
	for i := range cat {
		bySection[cat[i].Section] = append(bySection[cat[i].Section], i)
	}

	var out []Occurrence
	for _, section := range cat.Sections() {
		for _, di := range bySection[section] {
			def := &cat[di]
			offs, err := FindAll(data, def.Marker)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", def.Section, def.Name, err)
			}
			for ord, mo := range offs {
				out = append(out, makeOccurrence(data, def, ord, mo))
			}
		}
	}
	return out, nil
}

func makeOccurrence(data []byte, def *FieldDef, ordinal, markerOff int) Occurrence {
	occ := Occurrence{
		Def:           def,
		Ordinal:       ordinal,
		MarkerOffset:  markerOff,
		PayloadOffset: markerOff + len(def.Marker) + format.PayloadSkip,
	}

	width := def.Layout.Width()
	raw, ok := buf.Slice(data, occ.PayloadOffset, width)
	if !ok {
		occ.Err = fmt.Errorf("%w: %s payload of %d bytes at 0x%X (buffer is %d bytes)",
			ErrOutOfBounds, occ.Label(), width, occ.PayloadOffset, len(data))
		return occ
	}

	if width > 0 {
		occ.Raw = append([]byte(nil), raw...)
	}
	occ.Values = make([]Value, 0, len(def.Layout))
	off := occ.PayloadOffset
	for _, k := range def.Layout {
		v, err := format.DecodeScalar(data, off, k)
		if err != nil {
			// Unreachable once the width check passed, but keep the
			// error entry contract either way.
			occ.Err = err
			occ.Raw = nil
			occ.Values = nil
			return occ
		}
		occ.Values = append(occ.Values, v)
		off += k.Width()
	}
	return occ
}

// FormatValues renders decoded values the way the original editor shows them:
// a bare scalar for single-element layouts, a parenthesised tuple otherwise.
func (o *Occurrence) FormatValues() string {
	if o.Err != nil {
		return "(unreadable)"
	}
	if len(o.Values) == 0 {
		return "(marker only)"
	}
	if len(o.Values) == 1 {
		return o.Values[0].String()
	}
	s := "("
	for i, v := range o.Values {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + ")"
}
