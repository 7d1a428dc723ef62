// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// 鍵の取得元
const (
	KeySourceValkey = "valkey"
	KeySourceRemote = "remote"
	KeySourceStatic = "static"
)

// Config はPseudonym APIの設定を保持する。
type Config struct {
	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8090"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`

	// 仮名鍵設定
	KeySource       string `envconfig:"KEY_SOURCE" default:"valkey"`
	DefaultKeyIndex uint8  `envconfig:"DEFAULT_KEY_INDEX" default:"0"`
	StaticKeys      string `envconfig:"STATIC_KEYS"`
	KeyAPIURL       string `envconfig:"KEY_API_URL"`

	// Valkey設定（KEY_SOURCE=valkeyの場合に使用）
	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// RADIUS設定（xlatにRADIUSパケットを渡す場合に使用）
	RadiusSecret string `envconfig:"RADIUS_SECRET"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// RedisAddr はValkey接続文字列を返す。
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR")
	}

	if c.DefaultKeyIndex > MaxKeyIndex {
		return fmt.Errorf("DEFAULT_KEY_INDEX must be between 0-%d", MaxKeyIndex)
	}

	switch c.KeySource {
	case KeySourceValkey:
		if strings.TrimSpace(c.RedisHost) == "" {
			return fmt.Errorf("REDIS_HOST is required when KEY_SOURCE=valkey")
		}
	case KeySourceRemote:
		if !strings.HasPrefix(c.KeyAPIURL, "http://") && !strings.HasPrefix(c.KeyAPIURL, "https://") {
			return fmt.Errorf("KEY_API_URL must start with http:// or https://")
		}
	case KeySourceStatic:
		if strings.TrimSpace(c.StaticKeys) == "" {
			return fmt.Errorf("STATIC_KEYS is required when KEY_SOURCE=static")
		}
	default:
		return fmt.Errorf("KEY_SOURCE must be one of valkey, remote, static")
	}
	return nil
}
