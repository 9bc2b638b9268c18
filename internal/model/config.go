package model

// Config holds settings read from a .doxycov.yml file. Zero values mean
// "not set"; command line flags take precedence over file values.
type Config struct {
	// Threshold is the minimum acceptable coverage percentage.
	Threshold *int `yaml:"threshold"`

	// NoError suppresses the non-zero exit code on a coverage shortfall.
	NoError bool `yaml:"noerror"`

	// Exclude lists regular expressions matched against resolved source
	// file paths; matching files are dropped from the report.
	Exclude []string `yaml:"exclude"`
}
