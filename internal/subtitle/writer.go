package subtitle

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes SRT text to path, creating parent directories and
// ending the file with a single newline.
func WriteFile(path, text string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	text = strings.TrimRight(text, "\n") + "\n"
	return os.WriteFile(path, []byte(text), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
