package format

import "errors"

var (
	// ErrInvalidDefinition indicates a malformed catalog entry, such as an
	// empty marker. Fatal at startup, never produced at runtime.
	ErrInvalidDefinition = errors.New("format: invalid field definition")
	// ErrOutOfBounds indicates a decode or write range exceeded the buffer.
	ErrOutOfBounds = errors.New("format: out of bounds")
	// ErrValueOutOfRange indicates a value not representable in the target
	// scalar kind.
	ErrValueOutOfRange = errors.New("format: value out of range")
	// ErrLengthMismatch indicates a raw overwrite whose byte count differs
	// from the target range.
	ErrLengthMismatch = errors.New("format: length mismatch")
	// ErrUnrepairable indicates the register repair policy declined to guess.
	ErrUnrepairable = errors.New("format: header not repairable")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)
