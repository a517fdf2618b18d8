package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// testFileSize is the length of the synthetic fixture built by writeTestFile.
const testFileSize = 0x100

// writeTestFile builds a small CDFbin fixture in a temp dir and returns its
// path. The file has a consistent register block and two known fields:
//
//	Mass (GENERAL, float)       marker at 0x30, payload 720.0
//	FuelSetting (GENERAL, byte) marker at 0x50, payload 10
func writeTestFile(t *testing.T) string {
	t.Helper()
	return writeTestFileBytes(t, testFixture())
}

func testFixture() []byte {
	data := make([]byte, testFileSize)
	for i := range data {
		data[i] = 0xEE
	}
	copy(data, "CDFBIN\x00\x00")

	// Consistent registers: R3 = 0x80, so R1 = 0x58 and R2 = 0x80.
	binary.LittleEndian.PutUint32(data[0x08:], testFileSize)
	binary.LittleEndian.PutUint32(data[0x14:], 0x80-0x28)
	binary.LittleEndian.PutUint32(data[0x20:], testFileSize-0x80)
	binary.LittleEndian.PutUint32(data[0x24:], 0x80)

	// Mass = 720.0
	copy(data[0x30:], []byte{0x22, 0x67, 0x0B, 0x57, 0xAB})
	binary.LittleEndian.PutUint32(data[0x35:], 0x44340000)

	// FuelSetting = 10
	copy(data[0x50:], []byte{0x20, 0x99, 0xF0, 0xBB, 0xF8})
	data[0x55] = 10

	return data
}

func writeTestFileBytes(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.cdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// resetFlags returns every global and per-command flag to its default so
// tests do not leak state into each other.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	defsPath = ""

	fieldsSection = ""
	fieldsOffsets = false
	getSection = ""
	getOrdinal = 0
	getRawBytes = false
	setSection = ""
	setOrdinal = 0
	setOut = ""
	setDryRun = false
	setForce = false
	patchOut = ""
	patchDryRun = false
	patchForce = false
	repairOut = ""
	repairDryRun = false
	dumpOffset = "0"
	dumpLength = -1
	dumpField = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w
	fnErr := fn()
	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
