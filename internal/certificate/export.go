package certificate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Export writes the certificate PNG into dir and returns the file path.
// The file appears under its final name only once fully written.
func (c *Certificate) Export(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".certificate-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := c.WritePNG(tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	path := filepath.Join(dir, c.FileName())
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("move certificate into place: %w", err)
	}
	return path, nil
}
