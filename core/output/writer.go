// Package output writes rendered reports and the identifier map to disk.
// Report filenames are derived from the source URL and the report kind
// (e.g. banffnorquay_com_winter_conditions_runs.json).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteReport writes one rendered report and returns its path.
func (w *Writer) WriteReport(source, kind string, data []byte, ext string) (string, error) {
	name := ReportName(source, kind)
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteFile writes data to path, creating parent directories. Relative
// paths are taken from the output directory. The file is written to a
// temporary sibling first and renamed so readers never see a partial map.
func (w *Writer) WriteFile(path string, data []byte) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.OutputDir, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing file %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replacing file %s: %w", path, err)
	}
	return path, nil
}

// ReportName converts a source URL and report kind into a flat filename.
// Example: https://example.com/winter/conditions/, runs → example_com_winter_conditions_runs
func ReportName(source, kind string) string {
	parts := []string{}
	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		if s := strings.Trim(sanitize(source), "_"); s != "" {
			parts = append(parts, s)
		}
	} else {
		parts = append(parts, sanitize(parsed.Host))
		if path := strings.Trim(parsed.Path, "/"); path != "" {
			for _, seg := range strings.Split(path, "/") {
				parts = append(parts, sanitize(seg))
			}
		}
	}
	if kind != "" {
		parts = append(parts, sanitize(kind))
	}
	if len(parts) == 0 {
		return "report"
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
