// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the service settings. Every field can be overridden through
// an IRIS_-prefixed environment variable (IRIS_PORT, IRIS_MODEL_PATH, ...).
type Config struct {
	Host         string
	Port         int
	ModelPath    string
	MetadataPath string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IRIS")
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 5000)
	v.SetDefault("model_path", "knn.gob")
	v.SetDefault("metadata_path", "knn_metadata.json")

	cfg := &Config{
		Host:         v.GetString("host"),
		Port:         v.GetInt("port"),
		ModelPath:    v.GetString("model_path"),
		MetadataPath: v.GetString("metadata_path"),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("model path must not be empty")
	}

	return cfg, nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
