package outfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"qrsheets/internal/errs"
)

func TestTimestamped(t *testing.T) {
	now := time.Date(2025, 1, 9, 14, 30, 22, 0, time.UTC)

	tests := []struct {
		base string
		want string
	}{
		{"qr-codes.pdf", "qr-codes-20250109-143022.pdf"},
		{"labels.pdf", "labels-20250109-143022.pdf"},
		{"noext", "noext-20250109-143022"},
		{"dir/name.pdf", "name-20250109-143022.pdf"},
	}
	for _, tt := range tests {
		if got := Timestamped(tt.base, now); got != tt.want {
			t.Fatalf("Timestamped(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	path, err := Write(dir, "doc.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if path != filepath.Join(dir, "doc.pdf") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestWriteUnwritableDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits not enforced here")
	}

	parent := t.TempDir()
	if err := os.Chmod(parent, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(parent, 0o755)

	dir := filepath.Join(parent, "output")
	_, err := Write(dir, "doc.pdf", []byte("x"))
	if err == nil {
		t.Fatal("expected an error for an unwritable directory")
	}
	if errs.KindOf(err) != errs.KindIO {
		t.Fatalf("expected an io error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "doc.pdf")); !os.IsNotExist(statErr) {
		t.Fatal("no file should exist after a failed write")
	}
}
