package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileNames are the files FindConfig looks for, in order of preference.
var ConfigFileNames = []string{"davnotes.yaml", "davnotes.yml", ".davnotes.yaml"}

// FindConfig looks upwards from startDir for a davnotes config file.
// It returns the absolute path of the first match, or an error when the
// filesystem root is reached without finding one.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if isFile(candidate) {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config file not found")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
