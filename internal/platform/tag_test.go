package platform

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
	}{
		{"empty caption", "", DefaultTag},
		{"whitespace only", "   \n\t", DefaultTag},
		{"single emoji", "😀", "😀"},
		{"emoji with padding", "  😀  ", "😀"},
		{"short text", "lol", "lol"},
		{"exactly ten runes", "abcdefghij", "abcdefghij"},
		{"eleven runes", "abcdefghijk", DefaultTag},
		{"ten emoji runes", "😀😀😀😀😀😀😀😀😀😀", "😀😀😀😀😀😀😀😀😀😀"},
		{"long sentence", "this caption is way too long", DefaultTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTag(tt.caption); got != tt.want {
				t.Errorf("NormalizeTag(%q) = %q, want %q", tt.caption, got, tt.want)
			}
		})
	}
}
