// Command stickerpress runs the sticker converter bot. It loads config,
// validates the external transcoding dependencies, resolves the bot identity,
// and consumes updates via long polling or webhook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/stickerpress/internal/check"
	"github.com/backmassage/stickerpress/internal/config"
	"github.com/backmassage/stickerpress/internal/convert"
	"github.com/backmassage/stickerpress/internal/logging"
	"github.com/backmassage/stickerpress/internal/pipeline"
	"github.com/backmassage/stickerpress/internal/telegram"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Fprintln(os.Stdout, "stickerpress v"+version)
		os.Exit(0)
	}

	// 1. Load and validate config; exit on error.
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stickerpress: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "stickerpress: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Dev, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stickerpress: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting", "version", version)

	// 2. Ensure the transcoder is usable; fail fast otherwise.
	if err := check.Deps(cfg, log); err != nil {
		log.Fatalw("dependency check failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Resolve the bot identity; the handle is part of every collection name.
	client := telegram.NewClient(cfg.BotToken)
	me, err := client.GetMe(ctx)
	if err != nil {
		log.Fatalw("getMe failed, check the bot token", "error", err)
	}
	log.Infow("authenticated", "bot", me.Username)

	// 4. Wire the pipeline and run the update loop.
	transcoder := convert.NewTranscoder(cfg.TranscoderPath, cfg.ProbePath, cfg.TranscodeTimeout, log)
	handler := pipeline.NewHandler(nil, transcoder, client, client, me.Username, log)
	bot := telegram.NewBot(client, handler, log)

	if cfg.UseWebhook {
		log.Infow("running in webhook mode", "url", cfg.WebhookURL, "port", cfg.Port)
		err = bot.RunWebhook(ctx, cfg.WebhookURL, cfg.Port)
	} else {
		log.Info("running in long-poll mode")
		err = bot.RunPolling(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalw("bot stopped", "error", err)
	}

	stats := handler.Stats()
	log.Infow("shutting down",
		"processed", stats.Processed, "static", stats.Static,
		"animated", stats.Animated, "failed", stats.Failed)
}
