package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := func() Config {
		c := Default()
		c.BotToken = "123:abc"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with token are valid", func(c *Config) {}, false},
		{"missing token", func(c *Config) { c.BotToken = "" }, true},
		{"webhook without url", func(c *Config) { c.UseWebhook = true }, true},
		{"webhook with url", func(c *Config) { c.UseWebhook = true; c.WebhookURL = "https://example.com/hook" }, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"zero timeout", func(c *Config) { c.TranscodeTimeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.TranscodeTimeout = -time.Second }, true},
		{"empty transcoder path", func(c *Config) { c.TranscoderPath = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("STICKERPRESS_TRANSCODER_PATH", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("USE_WEBHOOK", "true")
	t.Setenv("WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BotToken != "123:abc" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "123:abc")
	}
	if cfg.TranscoderPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("TranscoderPath = %q", cfg.TranscoderPath)
	}
	if !cfg.UseWebhook {
		t.Error("UseWebhook = false, want true")
	}
	if cfg.WebhookURL != "https://example.com/hook" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after env load: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TranscoderPath != "ffmpeg" {
		t.Errorf("TranscoderPath = %q, want %q", cfg.TranscoderPath, "ffmpeg")
	}
	if cfg.TranscodeTimeout != 30*time.Second {
		t.Errorf("TranscodeTimeout = %s, want 30s", cfg.TranscodeTimeout)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.UseWebhook {
		t.Error("UseWebhook = true, want false")
	}
}
