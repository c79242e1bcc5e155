package config

import (
	"strings"

	pkgconfig "github.com/aexoo-ai/spark-id/pkg/config"
	"github.com/aexoo-ai/spark-id/sparkid"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	ID      IDConfig `mapstructure:"id"`
	Metrics MetricsConfig
}

type ServerConfig struct {
	Host string
	Port int
	Mode string // gin mode: debug, release, test
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// IDConfig seeds the process-wide sparkid defaults at startup. Empty or
// zero fields are left to the library's own defaults.
type IDConfig struct {
	EntropyBits     int    `mapstructure:"entropy_bits"`
	Alphabet        string `mapstructure:"alphabet"`
	MaxPrefixLength int    `mapstructure:"max_prefix_length"`
	Separator       string `mapstructure:"separator"`
	Case            string `mapstructure:"case"`
	Timestamp       bool   `mapstructure:"timestamp"`
	MachineID       int    `mapstructure:"machine_id"`
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8094)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("id.entropy_bits", sparkid.DefaultEntropyBits)
	v.SetDefault("id.alphabet", sparkid.DefaultAlphabet)
	v.SetDefault("id.max_prefix_length", sparkid.DefaultMaxPrefixLength)
	v.SetDefault("id.separator", sparkid.DefaultSeparator)
	v.SetDefault("id.case", string(sparkid.DefaultCase))
	v.SetDefault("metrics.enabled", true)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("id.entropy_bits", "ID_ENTROPY_BITS")
	v.BindEnv("id.alphabet", "ID_ALPHABET")
	v.BindEnv("id.max_prefix_length", "ID_MAX_PREFIX_LENGTH")
	v.BindEnv("id.separator", "ID_SEPARATOR")
	v.BindEnv("id.case", "ID_CASE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Options translates the id block into sparkid options, skipping unset
// fields so the library defaults stay in charge for them.
func (c IDConfig) Options() []sparkid.Option {
	var opts []sparkid.Option
	if c.EntropyBits > 0 {
		opts = append(opts, sparkid.WithEntropyBits(c.EntropyBits))
	}
	if c.Alphabet != "" {
		opts = append(opts, sparkid.WithAlphabet(c.Alphabet))
	}
	if c.MaxPrefixLength > 0 {
		opts = append(opts, sparkid.WithMaxPrefixLength(c.MaxPrefixLength))
	}
	if c.Separator != "" {
		opts = append(opts, sparkid.WithSeparator(c.Separator))
	}
	if c.Case != "" {
		opts = append(opts, sparkid.WithCase(sparkid.Case(strings.ToLower(c.Case))))
	}
	if c.Timestamp {
		opts = append(opts, sparkid.WithTimestamp(true))
	}
	if c.MachineID != 0 {
		opts = append(opts, sparkid.WithMachineID(c.MachineID))
	}
	return opts
}
