package config

// File represents the structure of the configuration file. Unset fields
// leave the corresponding Config value unchanged.
type File struct {
	// Format is the default report format.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Checks are the checks to run by default.
	Checks []string `yaml:"checks,omitempty" toml:"checks,omitempty"`

	// RelRoot is the directory filenames are made relative to.
	RelRoot string `yaml:"relroot,omitempty" toml:"relroot,omitempty"`

	// FailFast stops checking after the first failure.
	FailFast *bool `yaml:"failfast,omitempty" toml:"failfast,omitempty"`

	// Ignored is the path of the ignored-variables table.
	Ignored string `yaml:"ignored,omitempty" toml:"ignored,omitempty"`

	// Verbosity is the default verbosity.
	Verbosity *int `yaml:"verbosity,omitempty" toml:"verbosity,omitempty"`

	// Concurrency limits how many inputs are read at once.
	Concurrency *int `yaml:"concurrency,omitempty" toml:"concurrency,omitempty"`
}
