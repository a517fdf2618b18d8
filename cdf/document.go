package cdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/cdfkit/internal/buf"
	"github.com/joshuapare/cdfkit/internal/format"
)

// Document is an edit session over one CDFbin file. The whole file is held in
// memory; the session is the single writer and there is no concurrent access.
// Every mutation keeps the buffer length fixed, and the pristine load-time
// image is retained so any range can be reverted to on-disk state.
type Document struct {
	path     string
	data     []byte
	pristine []byte
	catalog  Catalog
	occs     []Occurrence
}

// Load reads an entire file into memory and builds the field index.
func Load(path string, cat Catalog) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := FromBytes(data, cat)
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

// FromBytes builds a session over a copy of data.
func FromBytes(data []byte, cat Catalog) (*Document, error) {
	d := &Document{
		data:     append([]byte(nil), data...),
		pristine: append([]byte(nil), data...),
		catalog:  cat,
	}
	if err := d.Reparse(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the path the document was loaded from, if any.
func (d *Document) Path() string { return d.path }

// Len returns the buffer length in bytes. It never changes during a session.
func (d *Document) Len() int { return len(d.data) }

// Bytes exposes the live buffer. Callers must not resize it; mutations should
// go through Apply/Overwrite so the index is rebuilt.
func (d *Document) Bytes() []byte { return d.data }

// Pristine returns the byte image as it was at load time.
func (d *Document) Pristine() []byte { return d.pristine }

// Digest returns the xxhash of the current buffer. Two documents with equal
// digests hold byte-identical content; tests use this to prove that failed
// mutations left the buffer untouched.
func (d *Document) Digest() uint64 { return xxhash.Sum64(d.data) }

// Catalog returns the definitions this session scans with.
func (d *Document) Catalog() Catalog { return d.catalog }

// Occurrences returns the current field index.
func (d *Document) Occurrences() []Occurrence { return d.occs }

// Reparse rebuilds the field index from the current buffer. Must run after
// every committed mutation; offsets are stable but decoded values are not.
func (d *Document) Reparse() error {
	occs, err := BuildIndex(d.data, d.catalog)
	if err != nil {
		return err
	}
	d.occs = occs
	return nil
}

// Find locates an occurrence by field name and ordinal. Field names are not
// unique across sections, so section may be supplied to disambiguate; an
// empty section matches any.
func (d *Document) Find(section, name string, ordinal int) (*Occurrence, error) {
	for i := range d.occs {
		o := &d.occs[i]
		if o.Def.Name != name || o.Ordinal != ordinal {
			continue
		}
		if section != "" && o.Def.Section != section {
			continue
		}
		return o, nil
	}
	if section == "" {
		return nil, fmt.Errorf("field %s #%d not found", name, ordinal)
	}
	return nil, fmt.Errorf("field %s/%s #%d not found", section, name, ordinal)
}

// Apply encodes vals into the occurrence's payload and rebuilds the index.
// Returns the previous payload bytes for revert.
func (d *Document) Apply(occ *Occurrence, vals []Value) ([]byte, error) {
	prev, err := ApplyScalar(d.data, occ, vals)
	if err != nil {
		return nil, err
	}
	if err := d.Reparse(); err != nil {
		return nil, err
	}
	return prev, nil
}

// Overwrite replaces an explicit byte range and rebuilds the index. expect
// declares the length of the selection being replaced.
func (d *Document) Overwrite(off, expect int, newBytes []byte) ([]byte, error) {
	prev, err := ApplyRaw(d.data, off, expect, newBytes)
	if err != nil {
		return nil, err
	}
	if err := d.Reparse(); err != nil {
		return nil, err
	}
	return prev, nil
}

// RevertRange restores a byte range to its pristine load-time content.
func (d *Document) RevertRange(off, n int) error {
	orig, ok := buf.Slice(d.pristine, off, n)
	if !ok {
		return fmt.Errorf("%w: %d byte(s) at 0x%X (original file is %d bytes)",
			ErrOutOfBounds, n, off, len(d.pristine))
	}
	if _, err := ApplyRaw(d.data, off, n, orig); err != nil {
		return err
	}
	return d.Reparse()
}

// Registers decodes the header byte-count registers from the current buffer.
func (d *Document) Registers() (format.Registers, error) {
	return format.ParseRegisters(d.data)
}

// SaveAs writes the full buffer to path atomically: the bytes go to a
// temporary file in the destination directory, are synced, and then renamed
// over the target. A crash mid-write can therefore never leave a truncated
// file, which would break the length-preservation contract on the next load.
func (d *Document) SaveAs(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(d.data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	d.path = path
	return nil
}
