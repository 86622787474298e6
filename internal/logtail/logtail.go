package logtail

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the whole file at path and returns its lines with carriage
// returns removed. The result always has at least one element.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return Split(string(bytes)), nil
}

// Split normalizes line endings and splits content into lines. A trailing
// newline yields a final empty line.
func Split(content string) []string {
	content = strings.ReplaceAll(content, "\r", "")
	return strings.Split(content, "\n")
}
