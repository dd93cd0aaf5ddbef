// Package config provides configuration structures and utilities for declscan.
// It defines the options shared by the check and analyze commands and loads
// them from an optional YAML or TOML file.
package config
