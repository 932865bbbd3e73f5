package textsource

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubRunner returns canned output per command name.
type stubRunner struct {
	out  map[string]string
	errs map[string]error
	ran  []string
}

func (r *stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	r.ran = append(r.ran, name)
	if err, ok := r.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(r.out[name]), nil, nil
}

func TestExtractImage(t *testing.T) {
	stub := &stubRunner{out: map[string]string{"tesseract": "Factuur 2024-01-01\nTotaal 100,00\n"}}
	s := NewSource(Config{}, nil).WithRunner(stub)

	res, err := s.Extract(context.Background(), "/up/scan.jpg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "image-ocr" || res.Pages != 1 {
		t.Errorf("method=%q pages=%d", res.Method, res.Pages)
	}
	if !strings.Contains(res.Text, "Factuur") {
		t.Errorf("text = %q", res.Text)
	}
}

func TestExtractImageEmptyTextIsNotAnError(t *testing.T) {
	stub := &stubRunner{out: map[string]string{"tesseract": ""}}
	s := NewSource(Config{}, nil).WithRunner(stub)

	res, err := s.Extract(context.Background(), "/up/blank.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "" {
		t.Errorf("text = %q, want empty", res.Text)
	}
}

func TestExtractImageFailure(t *testing.T) {
	stub := &stubRunner{errs: map[string]error{"tesseract": errors.New("exit 1")}}
	s := NewSource(Config{}, nil).WithRunner(stub)

	if _, err := s.Extract(context.Background(), "/up/scan.jpg"); err == nil {
		t.Fatal("expected error")
	}
}

func TestExtractPDFFallsBackToPdftotext(t *testing.T) {
	// No real PDF on disk: the embedded reader fails, pdftotext supplies text.
	stub := &stubRunner{out: map[string]string{"pdftotext": "Invoice INV-1\fpage two"}}
	s := NewSource(Config{}, nil).WithRunner(stub)

	res, err := s.Extract(context.Background(), "/up/missing.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning from the failed embedded read")
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	s := NewSource(Config{}, nil)
	if _, err := s.Extract(context.Background(), "/up/notes.txt"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
