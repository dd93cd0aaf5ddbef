package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file looked up in the working
	// directory first.
	DefaultConfigFile = ".declscan.yaml"

	// DefaultTOMLConfigFile is the TOML alternative to DefaultConfigFile.
	DefaultTOMLConfigFile = ".declscan.toml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// IsTOML reports whether path is decoded as TOML rather than YAML.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// LoadConfigFile decodes the configuration file at path. Files ending in
// ".toml" are TOML, anything else is YAML.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	f := &File{}
	if IsTOML(path) {
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
		return f, nil
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return f, nil
}

// searchPaths returns the implicit configuration file locations, in the
// order they are tried.
func searchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths,
			filepath.Join(cwd, DefaultConfigFile),
			filepath.Join(cwd, DefaultTOMLConfigFile))
	}
	dir := XDGConfigDir()
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// FindConfigFile returns the configuration file to load, or "" if there is
// none. An explicit configPath is only returned if it exists; otherwise the
// working directory and then XDGConfigDir are searched.
func FindConfigFile(configPath string) string {
	candidates := searchPaths()
	if configPath != "" {
		candidates = []string{configPath}
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
