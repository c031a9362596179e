package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	sub "discsub/internal/submission"
)

// WriteRecord stores rec as JSON at path, creating parent directories.
func WriteRecord(t testing.TB, path string, rec *sub.Record) {
	t.Helper()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		t.Fatalf("encode record: %v", err)
	}
	WriteFile(t, path, data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ROMLine renders one DAT entry for a track.
func ROMLine(name string, size int64, sha1 string) string {
	return `<rom name="` + name + `" size="` + strconv.FormatInt(size, 10) + `" crc="00000000" md5="00000000000000000000000000000000" sha1="` + sha1 + `" />`
}
