package service

import (
	"regexp"
	"strings"
)

// ValidationError marks a rejected submission. The text is shown to the
// submitter as-is and nothing is persisted.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ParseTags splits a comma-separated input into trimmed tags. Empty pieces
// are dropped; order and duplicates are kept.
func ParseTags(input string) []string {
	if input == "" {
		return []string{}
	}
	tags := []string{}
	for _, piece := range strings.Split(input, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractYouTubeID pulls the video id out of a watch, share, or embed URL.
func ExtractYouTubeID(url string) (string, bool) {
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// YouTubeThumbnail returns the max-resolution thumbnail for a video id.
func YouTubeThumbnail(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
