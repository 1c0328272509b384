package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads SRT text from path with any byte order mark and CRLF line
// endings removed.
func ReadFile(path string) (string, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".srt" {
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open SRT file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}

// Open reads and parses an SRT file.
func Open(path string) (*Sequence, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSequence(text), nil
}
