package ndjsonsrv

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls the NDJSON ingestion service. Zero-value Config is
// usable: Addr defaults to ":8080" and MaxRecordBytes to 1<<20 when left
// at zero, in ApplyDefaults.
type Config struct {
	Addr          string `toml:"addr"`
	MaxRecordBytes int64  `toml:"max_record_bytes"`
	Encoder       string `toml:"encoder"` // "std", "jsoniter", or "sonic"
	LogLevel      string `toml:"log_level"`
}

// ApplyDefaults fills in zero-valued fields, matching the service's
// behavior when run with no config file at all.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.MaxRecordBytes == 0 {
		c.MaxRecordBytes = 1 << 20
	}
	if c.Encoder == "" {
		c.Encoder = "std"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads a TOML config file from path. A missing file is not an
// error: it's treated the same as an empty one, so deployments that don't
// need to override anything can omit --config entirely.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		cfg.ApplyDefaults()
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.ApplyDefaults()
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
