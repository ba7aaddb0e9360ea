package convert

// Fixed encode parameters for video stickers. The platform's constraints are
// hard limits (3s, 30fps, 512px, no audio), so the argument list never
// adapts per input.
const (
	maxDurationSecs = "3"
	targetFPS       = "30"
	videoBitrate    = "420k"
	videoCRF        = "32"
)

// BuildArgs constructs the complete transcoder argument slice for one
// animated conversion. The filter scales so the longest edge is at most 512
// without upscaling (force_original_aspect_ratio=decrease) and keeps the
// shorter dimension even (-2), then resamples to 30fps. Audio is stripped,
// the clip is truncated to the first 3 seconds, and the output is VP9 at a
// fixed bitrate/quality target with the fastest encoder deadline.
func BuildArgs(transcoder, inPath, outPath string) []string {
	return []string{
		transcoder, "-hide_banner", "-nostdin", "-y",
		"-loglevel", "error",
		"-i", inPath,
		"-an",
		"-t", maxDurationSecs,
		"-vf", "scale='min(512,iw)':-2:force_original_aspect_ratio=decrease,fps=" + targetFPS,
		"-c:v", "libvpx-vp9",
		"-b:v", videoBitrate,
		"-crf", videoCRF,
		"-deadline", "realtime",
		outPath,
	}
}
