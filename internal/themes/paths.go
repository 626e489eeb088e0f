package themes

import (
	"os"
	"path/filepath"
)

// SearchPaths returns user theme directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themes", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "themes-cli", "themes"))
	return paths
}
