package classify

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	data := []byte{0x01}

	tests := []struct {
		name    string
		payload Payload
		want    Kind
		wantErr error
	}{
		{"jpeg is static", Payload{Data: data, Ext: ".jpg"}, KindStatic, nil},
		{"png is static", Payload{Data: data, Ext: ".png"}, KindStatic, nil},
		{"webp is static", Payload{Data: data, Ext: ".webp"}, KindStatic, nil},
		{"no extension is static", Payload{Data: data}, KindStatic, nil},

		{"gif is animated", Payload{Data: data, Ext: ".gif"}, KindAnimated, nil},
		{"mp4 is animated", Payload{Data: data, Ext: ".mp4"}, KindAnimated, nil},
		{"mov is animated", Payload{Data: data, Ext: ".mov"}, KindAnimated, nil},
		{"mkv is animated", Payload{Data: data, Ext: ".mkv"}, KindAnimated, nil},
		{"webm is animated", Payload{Data: data, Ext: ".webm"}, KindAnimated, nil},
		{"avi is animated", Payload{Data: data, Ext: ".avi"}, KindAnimated, nil},
		{"uppercase GIF is animated", Payload{Data: data, Ext: ".GIF"}, KindAnimated, nil},
		{"extension without dot", Payload{Data: data, Ext: "mp4"}, KindAnimated, nil},

		{"motion hint overrides image ext", Payload{Data: data, Ext: ".jpg", MotionHint: true}, KindAnimated, nil},
		{"motion hint without ext", Payload{Data: data, MotionHint: true}, KindAnimated, nil},

		{"empty payload fails", Payload{Ext: ".jpg"}, "", ErrUnsupportedMedia},
		{"empty payload with hint fails", Payload{MotionHint: true}, "", ErrUnsupportedMedia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.payload)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Classify() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindSuffix(t *testing.T) {
	if got := KindStatic.Suffix(); got != "_static" {
		t.Errorf("KindStatic.Suffix() = %q, want %q", got, "_static")
	}
	if got := KindAnimated.Suffix(); got != "_video" {
		t.Errorf("KindAnimated.Suffix() = %q, want %q", got, "_video")
	}
}
