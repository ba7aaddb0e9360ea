// Package check validates the external transcoding dependencies before the
// bot starts accepting media: ffmpeg must be on the execution path and its
// build must carry a usable VP9 encoder.
package check

import (
	"errors"
	"os/exec"

	"go.uber.org/zap"

	"github.com/backmassage/stickerpress/internal/config"
)

// Sentinel errors returned by Deps when a required capability is missing.
var (
	ErrTranscoderNotFound = errors.New("transcoder not found on PATH (install ffmpeg)")
	ErrVP9EncodeFailed    = errors.New("transcoder has no working libvpx-vp9 encoder")
)

// Deps verifies the transcoder binary resolves and can run a minimal VP9
// test encode. ffprobe is optional (verification logging only), so its
// absence is a warning, not an error. Fail-fast: called once at startup.
func Deps(cfg *config.Config, log *zap.SugaredLogger) error {
	if _, err := exec.LookPath(cfg.TranscoderPath); err != nil {
		return ErrTranscoderNotFound
	}
	if !runSilent(cfg.TranscoderPath, vp9TestArgs()...) {
		return ErrVP9EncodeFailed
	}

	if cfg.ProbePath != "" {
		if _, err := exec.LookPath(cfg.ProbePath); err != nil {
			log.Warnw("ffprobe not found, output verification disabled", "path", cfg.ProbePath)
		}
	}
	return nil
}

// vp9TestArgs returns the arguments for a minimal libvpx-vp9 test encode:
// a tenth of a second of black frames to a null sink.
func vp9TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=64x64:d=0.1",
		"-c:v", "libvpx-vp9",
		"-f", "null", "-",
	}
}

// runSilent runs a command and reports whether it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
