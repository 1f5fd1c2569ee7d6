package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	// trimmed, empties dropped, order preserved, duplicates kept
	tags := ParseTags("Beach Day, , Funny ,Beach Day")
	assert.Equal(t, []string{"Beach Day", "Funny", "Beach Day"}, tags)
}

func TestParseTagsEmpty(t *testing.T) {
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags(" , ,"))
}

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url string
		id  string
		ok  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=abc&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"not-a-url", "", false},
		{"https://vimeo.com/12345", "", false},
	}
	for _, tc := range cases {
		id, ok := ExtractYouTubeID(tc.url)
		assert.Equal(t, tc.ok, ok, tc.url)
		assert.Equal(t, tc.id, id, tc.url)
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		YouTubeThumbnail("dQw4w9WgXcQ"))
}
