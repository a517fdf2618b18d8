package format

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a decoded scalar. It stores the exact 32-bit pattern read from the
// file (byte values occupy the low 8 bits), so a decode/encode round trip is
// bit-identical even for non-finite floats.
type Value struct {
	kind ScalarKind
	bits uint32
}

// ByteValue builds a byte Value.
func ByteValue(b byte) Value { return Value{kind: KindByte, bits: uint32(b)} }

// Float32Value builds a float Value. Any IEEE-754 value is representable,
// including NaN and the infinities; the format imposes no restriction.
func Float32Value(f float32) Value { return Value{kind: KindFloat32, bits: math.Float32bits(f)} }

// Int32Value builds an int32 Value.
func Int32Value(i int32) Value { return Value{kind: KindInt32, bits: uint32(i)} }

// UInt32Value builds a uint32 Value.
func UInt32Value(u uint32) Value { return Value{kind: KindUInt32, bits: u} }

// ValueFromInt builds a Value of an integer kind from a wide integer,
// rejecting values outside the kind's representable range.
func ValueFromInt(k ScalarKind, n int64) (Value, error) {
	switch k {
	case KindByte:
		if n < 0 || n > math.MaxUint8 {
			return Value{}, fmt.Errorf("%w: %d does not fit in a byte", ErrValueOutOfRange, n)
		}
		return ByteValue(byte(n)), nil
	case KindInt32:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%w: %d does not fit in an int32", ErrValueOutOfRange, n)
		}
		return Int32Value(int32(n)), nil
	case KindUInt32:
		if n < 0 || n > math.MaxUint32 {
			return Value{}, fmt.Errorf("%w: %d does not fit in a uint32", ErrValueOutOfRange, n)
		}
		return UInt32Value(uint32(n)), nil
	case KindFloat32:
		return Float32Value(float32(n)), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown scalar kind %d", ErrInvalidDefinition, k)
	}
}

// ParseValue parses the textual form of a scalar. Integer kinds accept
// decimal or 0x-prefixed hex; floats accept anything strconv.ParseFloat does.
func ParseValue(k ScalarKind, s string) (Value, error) {
	if k == KindFloat32 {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a float", ErrValueOutOfRange, s)
		}
		return Float32Value(float32(f)), nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q is not an integer", ErrValueOutOfRange, s)
	}
	return ValueFromInt(k, n)
}

// Kind returns the scalar kind of the value.
func (v Value) Kind() ScalarKind { return v.kind }

// Byte returns the value as a byte. Only meaningful for KindByte.
func (v Value) Byte() byte { return byte(v.bits) }

// Float32 returns the value as a float32. Only meaningful for KindFloat32.
func (v Value) Float32() float32 { return math.Float32frombits(v.bits) }

// Int32 returns the value as an int32. Only meaningful for KindInt32.
func (v Value) Int32() int32 { return int32(v.bits) }

// UInt32 returns the value as a uint32. Only meaningful for KindUInt32.
func (v Value) UInt32() uint32 { return v.bits }

// String renders the value the way the editor displays it: floats with %.6g,
// integers in decimal.
func (v Value) String() string {
	switch v.kind {
	case KindFloat32:
		return strconv.FormatFloat(float64(v.Float32()), 'g', 6, 32)
	case KindInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	default:
		return strconv.FormatUint(uint64(v.bits), 10)
	}
}

// Equal reports whether two values have the same kind and bit pattern.
// Note that NaN values with identical bits compare equal here.
func (v Value) Equal(o Value) bool { return v.kind == o.kind && v.bits == o.bits }
