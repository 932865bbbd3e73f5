package textsource

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nexonbooks/docintake/constants"
)

// stray box-drawing noise some scans produce
var reBoxNoise = regexp.MustCompile(`[|┃┆┇┊┋_]{3,}`)

func (s *Source) extractImage(ctx context.Context, path string) (Result, error) {
	txt, warn, err := s.tesseractOCR(ctx, path)
	if err != nil {
		return Result{SourceType: constants.IMAGE, Warnings: warn}, err
	}

	return Result{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Warnings:   warn,
	}, nil
}

func (s *Source) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := s.runner.Run(ctx, s.cfg.Tesseract, path, "stdout", "-l", s.cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return strings.TrimRight(txt, "\n"), nil, nil
}
