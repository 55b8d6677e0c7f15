package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	modeLambda = "lambda"
	modeHTTP   = "http"

	payloadV1 = "1.0"
	payloadV2 = "2.0"
)

var (
	ErrMissingAPIKey = errors.New("API_KEY or API_KEY_FILE is not set")
	ErrEmptyKeyFile  = errors.New("api key file is empty")
)

// Config 运行配置，全部来自环境变量
type Config struct {
	APIKey         string     `env:"API_KEY"`
	APIKeyFile     string     `env:"API_KEY_FILE"`
	Mode           string     `env:"AUTHORIZER_MODE"`
	PayloadVersion string     `env:"AUTHORIZER_PAYLOAD_VERSION" envDefault:"2.0"`
	ListenAddr     string     `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// loadConfig 解析环境变量并校验
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.APIKey) == 0 && len(cfg.APIKeyFile) > 0 {
		secret, err := readKeyFile(cfg.APIKeyFile)
		if err != nil {
			return Config{}, err
		}
		cfg.APIKey = secret
	}
	if len(cfg.Mode) == 0 {
		cfg.Mode = detectMode()
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Secret 优先使用 API_KEY，为空时 loadConfig 已填入 API_KEY_FILE 的内容
func (c Config) Secret() string {
	return c.APIKey
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	secret := strings.TrimRight(string(data), "\r\n")
	if len(secret) == 0 {
		return "", ErrEmptyKeyFile
	}
	return secret, nil
}

func (c Config) validate() error {
	if len(c.Secret()) == 0 {
		return ErrMissingAPIKey
	}
	switch c.Mode {
	case modeLambda, modeHTTP:
	default:
		return fmt.Errorf("unsupported AUTHORIZER_MODE %q", c.Mode)
	}
	switch c.PayloadVersion {
	case payloadV1, payloadV2:
	default:
		return fmt.Errorf("unsupported AUTHORIZER_PAYLOAD_VERSION %q", c.PayloadVersion)
	}
	return nil
}

func detectMode() string {
	if len(os.Getenv("AWS_LAMBDA_RUNTIME_API")) > 0 {
		return modeLambda
	}
	return modeHTTP
}
