package logtail

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "empty file",
			content:  "",
			expected: []string{""},
		},
		{
			name:     "unix endings",
			content:  "a\nb\nc",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "windows endings",
			content:  "a\r\nb\r\nc\r\n",
			expected: []string{"a", "b", "c", ""},
		},
		{
			name:     "stray carriage return",
			content:  "a\rb\n",
			expected: []string{"ab", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "VBox.log")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to create test log file: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Load() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatalf("Load returned nil error, want open error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load error = %v, want it to wrap os.ErrNotExist", err)
	}
}
