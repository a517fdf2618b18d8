package cdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sidecarDoc = `[
  {
    "section": "GENERAL",
    "name":    "MysteryFlag",
    "marker":  "26 13 F2 90 01",
    "layout":  ["byte"],
    "notes":   "seen only in DLC cars"
  },
  {
    "section": "GENERAL",
    "name":    "MysteryVector",
    "marker":  "24 00 11 22 33 A3 02",
    "layout":  ["float", "float", "float"]
  },
  {
    "section": "GENERAL",
    "name":    "MysteryPreset",
    "marker":  "28 44 55 66 77",
    "layout":  []
  }
]`

func TestParseDefs(t *testing.T) {
	defs, err := ParseDefs([]byte(sidecarDoc))
	require.NoError(t, err)
	require.Len(t, defs, 3)

	require.Equal(t, "MysteryFlag", defs[0].Name)
	require.Equal(t, []byte{0x26, 0x13, 0xF2, 0x90, 0x01}, defs[0].Marker)
	require.Equal(t, Layout{Byte}, defs[0].Layout)
	require.Equal(t, "seen only in DLC cars", defs[0].Notes)

	require.Equal(t, Layout{Float32, Float32, Float32}, defs[1].Layout)
	require.Empty(t, defs[2].Layout, "marker-only definitions are legal")
}

func TestParseDefsErrors(t *testing.T) {
	_, err := ParseDefs([]byte(`{`))
	require.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = ParseDefs([]byte(`[{"section":"S","name":"N","marker":"","layout":[]}]`))
	require.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = ParseDefs([]byte(`[{"section":"S","name":"N","marker":"0A","layout":["double"]}]`))
	require.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = ParseDefs([]byte(`[{"section":"S","name":"","marker":"0A","layout":[]}]`))
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadDefs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(sidecarDoc), 0o644))

	defs, err := LoadDefs(path)
	require.NoError(t, err)
	require.Len(t, defs, 3)

	// Sidecar defs extend the built-in catalog cleanly.
	merged := append(Catalog{}, BuiltinCatalog...)
	merged = append(merged, defs...)
	require.NoError(t, merged.Validate())

	_, err = LoadDefs(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
