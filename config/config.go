package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database DatabaseConfig  `yaml:"database"`
	Redis    RedisConfig     `yaml:"redis"`
	Auth     AuthConfig      `yaml:"auth"`
	Blob     BlobStoreConfig `yaml:"blob_store"`
	Logging  LoggingConfig   `yaml:"logging"`
	Health   HealthConfig    `yaml:"health_check"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig describes how bearer tokens issued by the identity provider
// are verified. The provider signs tokens with the shared secret and puts
// the stable user identifier in the subject claim.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
}

type BlobStoreConfig struct {
	Endpoint      string `yaml:"endpoint"`
	APIKey        string `yaml:"api_key"`
	PublicBaseURL string `yaml:"public_base_url"`
	CallbackToken string `yaml:"callback_token"`
	TimeoutMs     int    `yaml:"timeout_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type HealthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

var AppConfig *Config

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Charset == "" {
		cfg.Database.Charset = "utf8mb4"
	}
	if cfg.Blob.PublicBaseURL == "" {
		cfg.Blob.PublicBaseURL = "https://utfs.io/f/"
	}
	if cfg.Blob.TimeoutMs == 0 {
		cfg.Blob.TimeoutMs = 10000
	}
	if cfg.Health.Endpoint == "" {
		cfg.Health.Endpoint = "/api/health"
	}
}
