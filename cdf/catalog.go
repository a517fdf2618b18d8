package cdf

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/cdfkit/internal/format"
)

// Re-exported scalar types so consumers only import this package.
type (
	// ScalarKind identifies one payload scalar type.
	ScalarKind = format.ScalarKind
	// Value is a decoded scalar with its exact bit pattern.
	Value = format.Value
)

// Scalar kind constants, re-exported from internal/format.
const (
	Byte    = format.KindByte
	Float32 = format.KindFloat32
	Int32   = format.KindInt32
	UInt32  = format.KindUInt32
)

// Sentinel errors, re-exported from internal/format.
var (
	ErrInvalidDefinition = format.ErrInvalidDefinition
	ErrOutOfBounds       = format.ErrOutOfBounds
	ErrValueOutOfRange   = format.ErrValueOutOfRange
	ErrLengthMismatch    = format.ErrLengthMismatch
	ErrUnrepairable      = format.ErrUnrepairable
)

// Layout is the ordered scalar tuple that follows a field marker. A nil or
// empty layout is legal and means the marker carries no payload (the field's
// presence is the information).
type Layout []ScalarKind

// Width returns the total payload width in bytes.
func (l Layout) Width() int {
	w := 0
	for _, k := range l {
		w += k.Width()
	}
	return w
}

// String returns the catalog spelling of the layout, e.g. "byte,float".
func (l Layout) String() string {
	if len(l) == 0 {
		return "(none)"
	}
	parts := make([]string, len(l))
	for i, k := range l {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}

// FieldDef describes one known field of the CDFbin format: where to find it
// (marker) and how to decode what follows (layout). Definitions are
// constructed once at startup and shared read-only.
//
// Uniqueness is not required: several definitions may share a section, and a
// marker may occur several times in a file (each occurrence gets an ordinal).
type FieldDef struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Marker  []byte `json:"-"`
	Layout  Layout `json:"-"`
	Notes   string `json:"notes,omitempty"`
}

// MarkerHex returns the marker as space-separated uppercase hex, the spelling
// used in catalog files and display.
func (d *FieldDef) MarkerHex() string {
	parts := make([]string, len(d.Marker))
	for i, b := range d.Marker {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// Validate reports whether the definition is well formed. An empty marker can
// never be scanned for and is rejected outright.
func (d *FieldDef) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: definition in section %q has no name", ErrInvalidDefinition, d.Section)
	}
	if len(d.Marker) == 0 {
		return fmt.Errorf("%w: %s/%s has an empty marker", ErrInvalidDefinition, d.Section, d.Name)
	}
	return nil
}

// Catalog is an ordered list of field definitions. Order matters: the field
// index presents occurrences grouped by section in catalog order, then by
// definition order within the section.
type Catalog []FieldDef

// Validate checks every definition. Any failure is fatal at startup.
func (c Catalog) Validate() error {
	for i := range c {
		if err := c[i].Validate(); err != nil {
			return fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return nil
}

// Sections returns the section names in first-appearance order.
func (c Catalog) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for i := range c {
		if s := c[i].Section; !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ParseMarker parses a space-separated hex marker spelling like
// "DE AD BE EF". Commas are accepted as separators too.
func ParseMarker(s string) ([]byte, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := hex.DecodeString(f)
		if err != nil || len(b) != 1 {
			return nil, fmt.Errorf("%w: bad marker byte %q (want hex like \"DE AD BE EF\")", ErrInvalidDefinition, f)
		}
		out = append(out, b[0])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty marker", ErrInvalidDefinition)
	}
	return out, nil
}

// hx is the static-table form of ParseMarker. The built-in catalog is
// compiled in, so a bad spelling is a programming error.
func hx(s string) []byte {
	b, err := ParseMarker(s)
	if err != nil {
		panic(err)
	}
	return b
}
