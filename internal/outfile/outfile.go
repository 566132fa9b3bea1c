// Package outfile names and writes the generated documents.
package outfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qrsheets/internal/errs"
)

// DefaultDir is where generated documents land, relative to the working
// directory. It is created on demand.
const DefaultDir = "output"

const timestampFormat = "20060102-150405"

// Timestamped inserts a timestamp between the base filename's stem and its
// extension, e.g. "qr-codes.pdf" -> "qr-codes-20250109-143022.pdf".
func Timestamped(base string, now time.Time) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(filepath.Base(base), ext)
	return fmt.Sprintf("%s-%s%s", stem, now.Format(timestampFormat), ext)
}

// Write creates dir if absent and writes data to dir/name in a single call,
// so a failed run never leaves a partial file. Returns the written path.
func Write(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.IO(err, "create output directory %q", dir)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errs.IO(err, "write %q", path)
	}
	return path, nil
}
