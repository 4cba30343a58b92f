// Package config provides configuration loading and validation for treesift.
package config

// Config is the root configuration structure loaded from YAML.
// Every field has a working default; a config file only overrides what
// it names.
type Config struct {
	// Extensions is the file-extension allow-list used to classify
	// entries as files. Entries are normalized to lowercase without a
	// leading dot during validation.
	Extensions []string `yaml:"extensions"`

	// FilesOnly suppresses directory records in the output.
	FilesOnly bool `yaml:"files_only,omitempty"`

	// Output is the record format: text or json.
	Output string `yaml:"output,omitempty"`

	// ProgressInterval is the line cadence for plain-text progress
	// reporting when the progress bar is disabled.
	ProgressInterval int `yaml:"progress_interval,omitempty"`
}
