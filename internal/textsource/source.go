// Package textsource turns uploaded files into plain text. PDFs go
// through an embedded parser first, then pdftotext, then rasterized OCR;
// images go straight to tesseract. An empty result is a valid outcome
// (scanned page with no recognizable text), not an error.
package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/nexonbooks/docintake/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "nld+eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

// Result carries the extracted text with provenance.
type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-embedded" | "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration   time.Duration
	Warnings   []string
}

type Source struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewSource(cfg Config, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "nld+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Source{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner; used by tests.
func (s *Source) WithRunner(r Runner) *Source {
	s.runner = r
	return s
}

// Extract picks a strategy based on file extension.
func (s *Source) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	s.logger.Debug("textsource.start", "path", path, "ext", ext)

	var res Result
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = s.extractPDF(ctx, path)
	case constants.IMAGE:
		res, err = s.extractImage(ctx, path)
	default:
		return Result{}, fmt.Errorf("unsupported file extension %q", ext)
	}
	res.Duration = time.Since(start)

	if err != nil {
		s.logger.Error("textsource.failed", "path", path, "error", err)
		return res, err
	}
	s.logger.Info("textsource.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"text_len", len(res.Text))
	return res, nil
}
