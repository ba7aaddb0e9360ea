package convert

import (
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	got := BuildArgs("ffmpeg", "/tmp/x/in.bin", "/tmp/x/out.webm")
	want := []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-y",
		"-loglevel", "error",
		"-i", "/tmp/x/in.bin",
		"-an",
		"-t", "3",
		"-vf", "scale='min(512,iw)':-2:force_original_aspect_ratio=decrease,fps=30",
		"-c:v", "libvpx-vp9",
		"-b:v", "420k",
		"-crf", "32",
		"-deadline", "realtime",
		"/tmp/x/out.webm",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() =\n%v\nwant\n%v", got, want)
	}
}

func TestBuildArgsCustomTranscoder(t *testing.T) {
	got := BuildArgs("/opt/ffmpeg/bin/ffmpeg", "in", "out")
	if got[0] != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("args[0] = %q, want custom transcoder path", got[0])
	}
	if got[len(got)-1] != "out" {
		t.Errorf("last arg = %q, want output path", got[len(got)-1])
	}
}
