package cdf

import "github.com/joshuapare/cdfkit/internal/format"

// Value constructors, re-exported so consumers never import internal/format.

// ByteValue builds a byte Value.
func ByteValue(b byte) Value { return format.ByteValue(b) }

// Float32Value builds a float Value. Any IEEE-754 value is accepted,
// including NaN and the infinities.
func Float32Value(f float32) Value { return format.Float32Value(f) }

// Int32Value builds an int32 Value.
func Int32Value(i int32) Value { return format.Int32Value(i) }

// UInt32Value builds a uint32 Value.
func UInt32Value(u uint32) Value { return format.UInt32Value(u) }

// ValueFromInt builds a Value of the given kind from a wide integer,
// rejecting values outside the kind's representable range.
func ValueFromInt(k ScalarKind, n int64) (Value, error) { return format.ValueFromInt(k, n) }

// ParseValue parses the textual form of a scalar of the given kind.
func ParseValue(k ScalarKind, s string) (Value, error) { return format.ParseValue(k, s) }
