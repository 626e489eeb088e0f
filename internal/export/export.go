// Package export writes themes in the file formats the editor loads.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/themes/internal/theme"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Write encodes one theme to w.
func Write(w io.Writer, t theme.Theme, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(t); err != nil {
			return fmt.Errorf("encode %s as json: %w", t.Name, err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(t); err != nil {
			return fmt.Errorf("encode %s as yaml: %w", t.Name, err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteOption configures WriteDir.
type WriteOption func(*writeOptions)

type writeOptions struct {
	onWritten func(t theme.Theme, path string)
}

// OnWritten registers fn to run after each theme file is written.
func OnWritten(fn func(t theme.Theme, path string)) WriteOption {
	return func(o *writeOptions) {
		o.onWritten = fn
	}
}

// WriteDir writes each theme to <dir>/<name><ext> and returns the paths in
// input order. Themes are validated before anything is written.
func WriteDir(dir string, themes []theme.Theme, format Format, opts ...WriteOption) ([]string, error) {
	var options writeOptions
	for _, opt := range opts {
		opt(&options)
	}

	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	for _, t := range themes {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("theme %q: %w", t.Name, err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(themes))
	for _, t := range themes {
		path := filepath.Join(dir, t.Name+format.Extension())
		if err := writeFile(path, t, format); err != nil {
			return nil, err
		}
		paths = append(paths, path)
		if options.onWritten != nil {
			options.onWritten(t, path)
		}
	}

	return paths, nil
}

func writeFile(path string, t theme.Theme, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(file, t, format); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
