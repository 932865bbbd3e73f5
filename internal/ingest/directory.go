package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/nexonbooks/docintake/constants"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
	Failed  uint32
}

// ScanDirectory walks root, filters by includeExts (or the supported
// defaults), skips hidden entries if requested, and returns the matched
// file paths in walk order plus aggregate stats.
func ScanDirectory(root string, includeExts []string, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		for e := range constants.AllowedExtensions {
			exts[e] = struct{}{}
		}
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var files []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})

	if err != nil {
		return files, stats, fmt.Errorf("walk: %w", err)
	}
	return files, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
