package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.png", "photo.png"},
		{"spaces replaced", "my photo.png", "my_photo.png"},
		{"unix path stripped", "/etc/passwd", "passwd"},
		{"windows path stripped", `C:\Windows\system32\cmd.exe`, "cmd.exe"},
		{"traversal collapsed", "../../secret.txt", "secret.txt"},
		{"bare dot-dot", "..", "file"},
		{"bare dot", ".", "file"},
		{"hidden file loses leading dot", ".env", "env"},
		{"null byte replaced", "a\x00b.png", "a_b.png"},
		{"empty input", "", "file"},
		{"unicode replaced", "жрафик.mp4", "______.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestMediaKey(t *testing.T) {
	assert.Equal(t, "article_photo.png", MediaKey("photo.png"))
	assert.Equal(t, "article_passwd", MediaKey("../../../etc/passwd"))
}

// A stored key never contains a separator or traversal sequence, regardless of
// how hostile the submitted filename is.
func TestMediaKeyNeverEscapesRoot(t *testing.T) {
	hostile := []string{
		"../../../../etc/shadow",
		"..\\..\\boot.ini",
		"a/b/../../../c",
		"....//....//x",
		"/", "\\", "..", ".",
		strings.Repeat("../", 50) + "deep",
	}

	for _, in := range hostile {
		key := MediaKey(in)
		assert.NotContains(t, key, "/", "input %q", in)
		assert.NotContains(t, key, "\\", "input %q", in)
		assert.NotContains(t, key, "..", "input %q", in)
		assert.True(t, strings.HasPrefix(key, MediaKeyPrefix), "input %q", in)
	}
}
