// Package tags reads display metadata and stream durations from audio files.
// It covers the formats the player can decode: MP3, FLAC, Ogg Vorbis, M4A and WAV.
package tags

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// File extensions understood by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
	ExtWAV  = ".wav"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Tag holds the metadata the player displays for a track.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string
}

// Ext returns the lower-cased extension of path.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// sanitize strips control characters and invalid UTF-8 from tag values so
// they cannot break terminal rendering.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if utf8.ValidString(s) && strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (t *Tag) sanitize() {
	t.Title = sanitize(t.Title)
	t.Artist = sanitize(t.Artist)
	t.Album = sanitize(t.Album)
}

// taglibTags wraps a taglib result map with lookup helpers.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
