package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Redis  RedisConfig  `yaml:"redis"`
	Amqp   AmqpConfig   `yaml:"amqp"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	DebugAddr       string        `yaml:"debug_addr"       env:"SERVER_DEBUG_ADDR"       env-default:":8081"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DataConfig struct {
	Folder string `yaml:"folder" env:"DATA_FOLDER" env-default:"data"`
}

// RedisConfig enables the response cache when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	Database int    `yaml:"database" env:"REDIS_DATABASE" env-default:"0"`
}

// AmqpConfig enables event publishing when Url is set.
type AmqpConfig struct {
	Url    string `yaml:"url"    env:"AMQP_URL"`
	Prefix string `yaml:"prefix" env:"AMQP_PREFIX" env-default:"directory"`
}

// Load reads configuration from a YAML file and environment variables,
// environment taking priority. The file path comes from CONFIG_PATH with
// "./config.yaml" as fallback. A missing fallback file is fine, a missing
// explicit file is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}

func (c *Config) HasRedis() bool {
	return c.Redis.Addr != ""
}

func (c *Config) HasAmqp() bool {
	return c.Amqp.Url != ""
}
