package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "factuur_001.pdf"))
	touch(t, filepath.Join(root, "scan.jpg"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, ".hidden", "secret.pdf"))
	touch(t, filepath.Join(root, "sub", "statement.png"))

	files, stats, err := ScanDirectory(root, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("matched %d files (%v), want 3", len(files), files)
	}
	for _, f := range files {
		if strings.Contains(f, ".hidden") {
			t.Errorf("hidden file included: %s", f)
		}
	}
	if stats.Matched != 3 {
		t.Errorf("stats.Matched = %d, want 3", stats.Matched)
	}
}

func TestScanDirectoryExtFilter(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "b.png"))

	files, _, err := ScanDirectory(root, []string{".PDF"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.pdf" {
		t.Fatalf("files = %v, want only a.pdf", files)
	}
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	if _, _, err := ScanDirectory("  ", nil, false); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"factuur 2024 (1).pdf", "factuur_2024_1_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"déjà vu.pdf", "d_j_vu.pdf"},
		{"...", "upload"},
		{"plain.pdf", "plain.pdf"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveUploadCollision(t *testing.T) {
	root := t.TempDir()
	ws := uuid.New()

	p1, err := SaveUpload(root, ws, "invoice.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := SaveUpload(root, ws, "invoice.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatal(err)
	}
	if p1 == p2 {
		t.Fatalf("collision not resolved: %s", p2)
	}
	if filepath.Base(p2) != "invoice_1.pdf" {
		t.Errorf("second path = %s, want invoice_1.pdf", filepath.Base(p2))
	}
	b, err := os.ReadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "two" {
		t.Errorf("second file content = %q", b)
	}
}
