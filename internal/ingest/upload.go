package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._%-]+`)

// SanitizeFilename strips path components and replaces anything outside a
// conservative character set so the result is safe to join into a path.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// SaveUpload writes r into root/<workspaceID>/<sanitized name>, creating
// directories as needed. On name collision a numeric suffix is appended
// before the extension. Returns the final path.
func SaveUpload(root string, workspaceID uuid.UUID, name string, r io.Reader) (string, error) {
	dir := filepath.Join(root, workspaceID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name = SanitizeFilename(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}
