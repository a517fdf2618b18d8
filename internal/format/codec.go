package format

import (
	"fmt"

	"github.com/joshuapare/cdfkit/internal/buf"
)

// DecodeScalar reads one scalar of kind k from b at off.
func DecodeScalar(b []byte, off int, k ScalarKind) (Value, error) {
	chunk, ok := buf.Slice(b, off, k.Width())
	if !ok {
		return Value{}, fmt.Errorf("%w: %s at 0x%X (buffer is %d bytes)", ErrOutOfBounds, k, off, len(b))
	}
	switch k {
	case KindByte:
		return ByteValue(chunk[0]), nil
	default:
		return Value{kind: k, bits: ReadU32(chunk, 0)}, nil
	}
}

// EncodeScalar returns the exact byte encoding of v. The result always has
// length v.Kind().Width(); a Value is in range by construction, so encoding
// cannot fail.
func EncodeScalar(v Value) []byte {
	if v.kind == KindByte {
		return []byte{byte(v.bits)}
	}
	out := make([]byte, 4)
	PutU32(out, 0, v.bits)
	return out
}
