package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/backmassage/stickerpress/internal/platform"
	"github.com/backmassage/stickerpress/internal/probe"
)

// Transcoder converts video/animation input into WEBM/VP9 video sticker
// assets by shelling out to an external transcoder (ffmpeg). Each conversion
// runs in its own scoped temp directory, removed on every exit path.
type Transcoder struct {
	path      string
	probePath string
	timeout   time.Duration
	log       *zap.SugaredLogger
}

// NewTranscoder builds a Transcoder. probePath may be empty to disable
// post-encode verification logging.
func NewTranscoder(path, probePath string, timeout time.Duration, log *zap.SugaredLogger) *Transcoder {
	return &Transcoder{path: path, probePath: probePath, timeout: timeout, log: log}
}

// Convert runs the full animated pipeline: persist input to a scoped temp
// location, invoke the transcoder with the fixed sticker arguments, read
// back the output. The wait is bounded by the configured timeout. Fails with
// [ErrTranscoderNotFound] when the binary is not resolvable, or a
// [*TranscodeError] on nonzero exit, timeout, or missing output.
func (t *Transcoder) Convert(ctx context.Context, data []byte) (*Asset, error) {
	if _, err := exec.LookPath(t.path); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTranscoderNotFound, t.path)
	}

	dir, err := os.MkdirTemp("", "stickerpress-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "in.bin")
	outPath := filepath.Join(dir, "out.webm")
	if err := os.WriteFile(inPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("write temp input: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	args := BuildArgs(t.path, inPath, outPath)
	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// A killed transcoder can leave children holding the stderr pipe open;
	// don't let that stall the bounded wait.
	cmd.WaitDelay = 2 * time.Second

	if err := cmd.Run(); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s", t.timeout)
		}
		return nil, &TranscodeError{Stderr: truncate(stderr.String(), maxDiagnostic), Err: err}
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		return nil, &TranscodeError{
			Stderr: truncate(stderr.String(), maxDiagnostic),
			Err:    errors.New("transcoder exited 0 but produced no output"),
		}
	}

	t.verify(ctx, outPath)

	return &Asset{Data: out, Format: platform.FormatVideo}, nil
}

// verify probes the transcoded output and logs its properties. Purely
// informational: the fixed encode arguments already enforce the constraints,
// so a violation here indicates a transcoder build quirk worth a warning,
// not a failed request.
func (t *Transcoder) verify(ctx context.Context, path string) {
	if t.probePath == "" {
		return
	}
	if _, err := exec.LookPath(t.probePath); err != nil {
		return
	}

	pr, err := probe.Probe(ctx, t.probePath, path)
	if err != nil {
		t.log.Debugw("output probe failed", "error", err)
		return
	}
	if pr.Duration > 3.05 || pr.FPS > 30.5 || pr.HasAudio ||
		pr.Width > MaxEdge || pr.Height > MaxEdge {
		t.log.Warnw("transcoded sticker violates constraints",
			"duration", pr.Duration, "fps", pr.FPS, "audio", pr.HasAudio,
			"width", pr.Width, "height", pr.Height)
		return
	}
	t.log.Debugw("transcoded sticker verified",
		"duration", pr.Duration, "fps", pr.FPS,
		"width", pr.Width, "height", pr.Height)
}
