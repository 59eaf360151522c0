// Package config provides configuration management for the bases CLI.
package config

// Default values applied before any config file, environment variable or flag.
const (
	DefaultFrom   = "10"
	DefaultTo     = "16"
	DefaultOutput = OutputText
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
// BASES_TO=2 sets the "to" key.
const EnvPrefix = "BASES_"

// Config holds all CLI configuration options.
type Config struct {
	// From is the default source base spec.
	From string `koanf:"from"`
	// To is the default target base spec.
	To string `koanf:"to"`
	// Separator is inserted between rendered digits.
	Separator string `koanf:"separator"`
	// Output is the output format (text|json).
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
	// Bases maps a name to the symbols of a custom base, for example
	//
	//	bases:
	//	  dna: [A, C, G, T]
	Bases map[string][]string `koanf:"bases"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Default returns a Config holding the default values.
func Default() *Config {
	return &Config{
		From:   DefaultFrom,
		To:     DefaultTo,
		Output: DefaultOutput,
	}
}
