package format

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	values := []Value{
		ByteValue(0),
		ByteValue(0x7F),
		ByteValue(0xFF),
		Float32Value(0),
		Float32Value(1.5),
		Float32Value(-273.15),
		Float32Value(float32(math.Inf(1))),
		Float32Value(float32(math.Inf(-1))),
		Float32Value(float32(math.NaN())),
		Int32Value(0),
		Int32Value(-1),
		Int32Value(math.MinInt32),
		Int32Value(math.MaxInt32),
		UInt32Value(0),
		UInt32Value(42),
		UInt32Value(math.MaxUint32),
	}
	for _, v := range values {
		enc := EncodeScalar(v)
		if len(enc) != v.Kind().Width() {
			t.Fatalf("EncodeScalar(%v %s): %d bytes, want %d", v, v.Kind(), len(enc), v.Kind().Width())
		}
		back, err := DecodeScalar(enc, 0, v.Kind())
		if err != nil {
			t.Fatalf("DecodeScalar(%s): %v", v.Kind(), err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch: kind=%s in=%v out=%v", v.Kind(), v, back)
		}
	}
}

func TestDecodeScalarLittleEndian(t *testing.T) {
	b := []byte{0x2A, 0x00, 0x00, 0x00}
	v, err := DecodeScalar(b, 0, KindInt32)
	if err != nil {
		t.Fatalf("DecodeScalar: %v", err)
	}
	if v.Int32() != 42 {
		t.Fatalf("Int32() = %d, want 42", v.Int32())
	}
	if got := EncodeScalar(Int32Value(100)); !bytes.Equal(got, []byte{0x64, 0x00, 0x00, 0x00}) {
		t.Fatalf("EncodeScalar(100) = % X", got)
	}
}

func TestDecodeScalarOutOfBounds(t *testing.T) {
	b := []byte{1, 2, 3}
	if _, err := DecodeScalar(b, 0, KindFloat32); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := DecodeScalar(b, 3, KindByte); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds at end, got %v", err)
	}
	if _, err := DecodeScalar(b, 2, KindByte); err != nil {
		t.Fatalf("last byte should decode, got %v", err)
	}
}

func TestValueFromIntRange(t *testing.T) {
	cases := []struct {
		kind ScalarKind
		n    int64
		ok   bool
	}{
		{KindByte, 0, true},
		{KindByte, 255, true},
		{KindByte, 256, false},
		{KindByte, -1, false},
		{KindInt32, math.MaxInt32, true},
		{KindInt32, math.MaxInt32 + 1, false},
		{KindInt32, math.MinInt32, true},
		{KindInt32, math.MinInt32 - 1, false},
		{KindUInt32, math.MaxUint32, true},
		{KindUInt32, math.MaxUint32 + 1, false},
		{KindUInt32, -1, false},
	}
	for _, c := range cases {
		_, err := ValueFromInt(c.kind, c.n)
		if c.ok && err != nil {
			t.Fatalf("ValueFromInt(%s, %d): %v", c.kind, c.n, err)
		}
		if !c.ok && !errors.Is(err, ErrValueOutOfRange) {
			t.Fatalf("ValueFromInt(%s, %d): got %v, want ErrValueOutOfRange", c.kind, c.n, err)
		}
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KindByte, "0x20")
	if err != nil || v.Byte() != 0x20 {
		t.Fatalf("ParseValue(byte, 0x20) = %v, %v", v, err)
	}
	if _, err := ParseValue(KindByte, "300"); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	v, err = ParseValue(KindFloat32, "-12.5")
	if err != nil || v.Float32() != -12.5 {
		t.Fatalf("ParseValue(float, -12.5) = %v, %v", v, err)
	}
	if _, err := ParseValue(KindInt32, "abc"); err == nil {
		t.Fatalf("expected parse error")
	}
}
