package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Ingest  Ingest  `json:"ingest" yaml:"ingest" mapstructure:"ingest"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Ingest houses tunables for the feed engine.
type Ingest struct {
	// UpdateWindow is the trailing window a publication counts toward the
	// recent-update rollup.
	UpdateWindow time.Duration `json:"updateWindow" yaml:"updateWindow" mapstructure:"updateWindow"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
