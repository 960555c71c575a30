package config

type Config struct {
	Database        DatabaseConfig `mapstructure:"database"`
	Defaults        DefaultsConfig `mapstructure:"defaults"`
	Seed            SeedConfig     `mapstructure:"seed"`
	Log             LogConfig      `mapstructure:"log"`
	SimulateLatency bool           `mapstructure:"simulate_latency"`
	ConfigPath      string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

// SeedConfig controls the synthetic-data generator. A non-zero Value makes
// seeding reproducible; 0 means seed from the wall clock.
type SeedConfig struct {
	Value int64 `mapstructure:"value"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "DOP"},
		Seed:     SeedConfig{Value: 0},
		Log:      LogConfig{Level: "", File: ""},
	}
}
