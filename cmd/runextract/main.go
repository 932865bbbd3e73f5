package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nexonbooks/docintake/internal/classify"
	"github.com/nexonbooks/docintake/internal/common"
	"github.com/nexonbooks/docintake/internal/extract"
	"github.com/nexonbooks/docintake/internal/textsource"
)

// runextract runs the local stages (text source, classifier, field
// extractor) on a single file and prints the candidate as JSON. No
// database, no AI; useful for debugging extraction on a problem document.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	source := textsource.NewSource(textsource.Config{
		Pdftotext:     cfg.Text.Pdftotext,
		Pdftoppm:      cfg.Text.Pdftoppm,
		Tesseract:     cfg.Text.Tesseract,
		TesseractLang: cfg.Text.TesseractLang,
		DPI:           cfg.Text.OCRDPI,
		MaxPages:      cfg.Text.MaxPages,
	}, logger)

	start := time.Now()
	res, err := source.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "file", path, "error", err)
		os.Exit(1)
	}

	classifier := classify.NewClassifier(classify.DefaultKeywordTable(), cfg.Intake.TextScanLimit, logger)
	cls := classifier.Classify(filepath.Base(path), res.Text)

	extractor := extract.NewExtractor(extract.DefaultVendorOverrides(), cfg.Intake.TextScanLimit, time.Now, logger)
	doc := extractor.Extract(cls.Type, filepath.Base(path), path, res.Text)

	logger.Info("extraction OK",
		"file", path,
		"method", res.Method,
		"pages", res.Pages,
		"type", cls.Type,
		"confidence", cls.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logger.Error("encode candidate", "error", err)
		os.Exit(1)
	}
}
