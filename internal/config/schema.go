package config

// Config is the top-level lendctl configuration.
type Config struct {
	DataDir string       `mapstructure:"data_dir" yaml:"data_dir"`
	Lookup  LookupConfig `mapstructure:"lookup" yaml:"lookup"`
}

// LookupConfig holds settings for the similar-titles lookup service.
type LookupConfig struct {
	APIBase        string `mapstructure:"api_base" yaml:"api_base"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxResults     int    `mapstructure:"max_results" yaml:"max_results"`
}
