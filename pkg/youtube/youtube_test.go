package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL without www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"leading whitespace", "  https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"underscore and dash", "https://youtu.be/a_b-C1d2E3f", "a_b-C1d2E3f"},
		{"empty", "", ""},
		{"not a video URL", "https://example.com/watch?v=dQw4w9WgXcQ", ""},
		{"ID too short", "shortid", ""},
		{"ID too long as bare token", "dQw4w9WgXcQextra", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}

func TestCanonicalWatchURL(t *testing.T) {
	url, err := CanonicalWatchURL("https://youtu.be/dQw4w9WgXcQ")
	assert.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", url)

	// All surface forms normalize to the same canonical URL
	fromEmbed, err := CanonicalWatchURL("https://www.youtube.com/embed/dQw4w9WgXcQ")
	assert.NoError(t, err)
	assert.Equal(t, url, fromEmbed)

	_, err = CanonicalWatchURL("https://vimeo.com/123456")
	assert.Error(t, err)
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", EmbedURL("dQw4w9WgXcQ"))
}
