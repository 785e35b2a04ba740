// Package config loads service configuration from YAML files, .env files and
// environment variables.
//
// Files are discovered relative to the working directory
// (./cmd/<service>/config.yml, ./config/config.yml, ./config.yml). A missing
// file is not an error: the struct keeps its zero values and ApplyDefaults
// fills them in.
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Server server.Config `yaml:"server" mapstructure:"server"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("weather-server", &cfg, config.WithEnvPrefix("WEATHER"))
package config
