package textsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nexonbooks/docintake/constants"
)

// extractPDF tries the embedded text layer first, then pdftotext, then
// full OCR. A PDF whose text layer is empty is the common scanned-
// document case and falls through without error.
func (s *Source) extractPDF(ctx context.Context, path string) (Result, error) {
	var warns []string

	text, pages, err := readEmbeddedText(path)
	if err != nil {
		warns = append(warns, fmt.Sprintf("embedded text read failed: %v", err))
	} else if strings.TrimSpace(text) != "" {
		return Result{Text: text, Pages: pages, SourceType: constants.PDF, Method: "pdf-embedded", Warnings: warns}, nil
	}

	text, pages, w, err := s.pdfToText(ctx, path)
	warns = append(warns, w...)
	if err == nil && strings.TrimSpace(text) != "" {
		return Result{Text: text, Pages: pages, SourceType: constants.PDF, Method: "pdf-text", Warnings: warns}, nil
	}
	if err != nil {
		warns = append(warns, fmt.Sprintf("pdftotext failed: %v", err))
	}

	text, pages, w, err = s.pdfToOCR(ctx, path)
	warns = append(warns, w...)
	if err != nil {
		return Result{SourceType: constants.PDF, Warnings: warns}, err
	}
	return Result{Text: text, Pages: pages, SourceType: constants.PDF, Method: "pdf-ocr", Warnings: warns}, nil
}

// readEmbeddedText pulls the text layer with the pure-Go parser, so the
// common born-digital case needs no external binaries.
func readEmbeddedText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var b strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}
	return b.String(), pages, nil
}

func (s *Source) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := s.runner.Run(ctx, s.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (s *Source) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "di-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			s.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := s.runner.Run(ctx, s.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", s.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if s.cfg.MaxPages > 0 && len(matches) > s.cfg.MaxPages {
		matches = matches[:s.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := s.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	pages = len(matches)
	return b.String(), pages, warns, nil
}
