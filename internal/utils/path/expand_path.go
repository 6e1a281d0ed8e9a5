package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands $VAR / ${VAR} references and a leading "~" so that
// settings like history.path can be written as "$XDG_DATA_HOME/forecast/history.db".
func ExpandPath(p string) (string, error) {
	if len(p) == 0 {
		return "", fmt.Errorf("empty path")
	}

	expanded := os.ExpandEnv(p)
	if expanded == "" {
		return "", fmt.Errorf("path %q expands to nothing", p)
	}

	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if expanded == "~" {
			return home, nil
		}
		return filepath.Join(home, expanded[2:]), nil
	}

	return filepath.Clean(expanded), nil
}
