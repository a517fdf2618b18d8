// Package cdf is the core engine for editing CDFbin vehicle definition
// containers in place.
//
// A CDFbin file has no structural index for its tuning fields. Each known
// field is located by scanning for a fixed marker byte sequence; the payload
// (a short tuple of scalars) follows the marker directly. Edits overwrite the
// payload bytes without ever changing the file length, which is the invariant
// that keeps every other marker offset in the file valid.
//
// The package provides the static field catalog, the marker scanner, the
// field index, the in-place mutator, and the Document session type that ties
// them to a loaded file. Header byte-count register checking and repair live
// in the verify subpackage.
package cdf
