package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the output settings guestdump honors.
type Config struct {
	Color          string
	HighlightColor string
}

const (
	defaultConfigPath     = "~/.config/guestdump/config.toml"
	defaultColor          = "always"
	defaultHighlightColor = "10"
)

// logPathParts locate the VirtualBox log of the RustOS VM under HOME.
var logPathParts = []string{"VirtualBox VMs", "RustOS", "Logs", "VBox.log"}

// Load locates and parses the guestdump config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Color: defaultColor, HighlightColor: defaultHighlightColor}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Color          string `toml:"color"`
		HighlightColor string `toml:"highlight_color"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if color := strings.TrimSpace(raw.Color); color != "" {
		cfg.Color = color
	}
	if highlight := strings.TrimSpace(raw.HighlightColor); highlight != "" {
		cfg.HighlightColor = highlight
	}
	return cfg, nil
}

// LogPath returns the hypervisor log location under the user's home directory.
func LogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(append([]string{home}, logPathParts...)...), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
