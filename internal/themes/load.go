package themes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/themes/internal/theme"
)

// Entry is a registered theme and where it came from.
type Entry struct {
	Theme  theme.Theme
	Source string // file path or "builtin"
}

// SourceBuiltin marks themes compiled into the binary.
const SourceBuiltin = "builtin"

// LoadTheme reads and validates a single theme file (.yaml, .yml or .json).
func LoadTheme(path string) (*Entry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	parsed, err := parseTheme(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	return &Entry{Theme: parsed, Source: path}, nil
}

// LoadThemesFromDir loads every theme file in dir. A missing dir yields no themes.
func LoadThemesFromDir(dir string) ([]*Entry, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Entry{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Entry{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	loaded := make([]*Entry, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}
		item, err := LoadTheme(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, item)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Theme.Name < loaded[j].Theme.Name
	})

	return loaded, nil
}

func isThemeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseTheme(data []byte, ext string) (theme.Theme, error) {
	var parsed theme.Theme

	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return theme.Theme{}, err
		}
	} else {
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return theme.Theme{}, err
		}
	}

	parsed.Name = strings.TrimSpace(parsed.Name)
	if err := parsed.Validate(); err != nil {
		return theme.Theme{}, err
	}

	return parsed, nil
}
