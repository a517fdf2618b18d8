package cdf

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/joshuapare/cdfkit/internal/format"
)

// Catalog sidecar files let a maintainer extend the built-in field table
// without touching scanner, codec, or checker logic. The file is a JSON array
// of definitions using the catalog spellings for markers and layouts:
//
//	[
//	  {
//	    "section": "GENERAL",
//	    "name":    "MysteryFlag",
//	    "marker":  "26 13 F2 90 01",
//	    "layout":  ["byte"],
//	    "notes":   "seen only in DLC cars"
//	  }
//	]

type fieldDefJSON struct {
	Section string   `json:"section"`
	Name    string   `json:"name"`
	Marker  string   `json:"marker"`
	Layout  []string `json:"layout"`
	Notes   string   `json:"notes"`
}

// ParseDefs decodes a catalog sidecar document.
func ParseDefs(data []byte) (Catalog, error) {
	var raw []fieldDefJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	out := make(Catalog, 0, len(raw))
	for i, r := range raw {
		marker, err := ParseMarker(r.Marker)
		if err != nil {
			return nil, fmt.Errorf("definition %d (%s): %w", i, r.Name, err)
		}
		layout := make(Layout, 0, len(r.Layout))
		for _, s := range r.Layout {
			k, err := format.ParseScalarKind(s)
			if err != nil {
				return nil, fmt.Errorf("definition %d (%s): %w", i, r.Name, err)
			}
			layout = append(layout, k)
		}
		out = append(out, FieldDef{
			Section: r.Section,
			Name:    r.Name,
			Marker:  marker,
			Layout:  layout,
			Notes:   r.Notes,
		})
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadDefs reads a catalog sidecar file and returns its definitions.
func LoadDefs(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	defs, err := ParseDefs(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return defs, nil
}
