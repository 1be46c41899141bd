package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadNamed reads the file at path and returns its base name together with
// its content.
func ReadNamed(path string) (string, []byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("%s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	return filepath.Base(path), content, nil
}
