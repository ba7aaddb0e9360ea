// Package config holds runtime configuration: defaults, file/env loading via
// viper, and validation. The bot credential and the webhook triple are the
// only externally required inputs; everything else has a working default.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. It is populated by [Load] and passed
// (by pointer) into component constructors; nothing reads process-wide state
// after startup.
type Config struct {
	// Bot credential, from @BotFather. Required.
	BotToken string `mapstructure:"bot_token"`

	// Transcoder settings.
	TranscoderPath   string        `mapstructure:"transcoder_path"`   // Default: "ffmpeg".
	ProbePath        string        `mapstructure:"probe_path"`        // Default: "ffprobe". Optional capability.
	TranscodeTimeout time.Duration `mapstructure:"transcode_timeout"` // Default: 30s. Bounds one ffmpeg run.

	// Transport mode. Default is long polling; the webhook triple switches
	// to webhook delivery.
	UseWebhook bool   `mapstructure:"use_webhook"`
	WebhookURL string `mapstructure:"webhook_url"`
	Port       int    `mapstructure:"port"` // Default: 8080. Webhook listen port.

	// Logging.
	Dev      bool   `mapstructure:"dev"`
	LogLevel string `mapstructure:"log_level"` // Default: "info".
}

// Default returns a Config with all defaults applied. Used as the base
// before [Load] merges file and environment overrides.
func Default() Config {
	return Config{
		TranscoderPath:   "ffmpeg",
		ProbePath:        "ffprobe",
		TranscodeTimeout: 30 * time.Second,
		Port:             8080,
		LogLevel:         "info",
	}
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the STICKERPRESS_ prefix (STICKERPRESS_BOT_TOKEN,
// STICKERPRESS_USE_WEBHOOK, ...); the bare BOT_TOKEN variable is also
// honored for parity with the usual bot deployment convention.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("transcoder_path", def.TranscoderPath)
	v.SetDefault("probe_path", def.ProbePath)
	v.SetDefault("transcode_timeout", def.TranscodeTimeout)
	v.SetDefault("port", def.Port)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("use_webhook", false)
	v.SetDefault("dev", false)

	v.SetEnvPrefix("stickerpress")
	v.AutomaticEnv()
	_ = v.BindEnv("bot_token", "STICKERPRESS_BOT_TOKEN", "BOT_TOKEN")
	_ = v.BindEnv("webhook_url", "STICKERPRESS_WEBHOOK_URL", "WEBHOOK_URL")
	_ = v.BindEnv("use_webhook", "STICKERPRESS_USE_WEBHOOK", "USE_WEBHOOK")
	_ = v.BindEnv("port", "STICKERPRESS_PORT", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is internally consistent. Called
// once at startup; failures are fatal.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("bot token is required (set BOT_TOKEN)")
	}
	if c.UseWebhook && c.WebhookURL == "" {
		return errors.New("webhook_url is required when use_webhook is set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TranscodeTimeout <= 0 {
		return fmt.Errorf("transcode_timeout must be positive, got %s", c.TranscodeTimeout)
	}
	if c.TranscoderPath == "" {
		return errors.New("transcoder_path must not be empty")
	}
	return nil
}
