package format

import "fmt"

// ScalarKind enumerates the payload scalar types that occur in CDFbin field
// layouts. The set is closed: only these four kinds exist in the format.
type ScalarKind uint8

const (
	// KindByte is a single unsigned byte.
	KindByte ScalarKind = iota
	// KindFloat32 is a 4-byte IEEE-754 single-precision float.
	KindFloat32
	// KindInt32 is a 4-byte two's-complement signed integer.
	KindInt32
	// KindUInt32 is a 4-byte unsigned integer.
	KindUInt32
)

// Width returns the encoded size of the scalar kind in bytes.
func (k ScalarKind) Width() int {
	if k == KindByte {
		return 1
	}
	return 4
}

// String returns the catalog spelling of the kind.
func (k ScalarKind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindFloat32:
		return "float"
	case KindInt32:
		return "int32"
	case KindUInt32:
		return "uint32"
	default:
		return fmt.Sprintf("ScalarKind(%d)", uint8(k))
	}
}

// ParseScalarKind parses the catalog spelling of a scalar kind.
func ParseScalarKind(s string) (ScalarKind, error) {
	switch s {
	case "byte":
		return KindByte, nil
	case "float":
		return KindFloat32, nil
	case "int32":
		return KindInt32, nil
	case "uint32":
		return KindUInt32, nil
	default:
		return 0, fmt.Errorf("%w: unknown scalar kind %q", ErrInvalidDefinition, s)
	}
}
