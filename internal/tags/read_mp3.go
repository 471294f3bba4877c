package tags

import (
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads MP3 metadata using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	artist := id3tag.Artist()
	if artist == "" {
		artist = getID3TextFrame(id3tag, "TPE2") // album artist
	}

	t := &Tag{
		Path:   path,
		Title:  id3tag.Title(),
		Artist: artist,
		Album:  id3tag.Album(),
	}
	t.sanitize()
	return t, nil
}

// readMP3TLEN returns the duration stored in the ID3v2 TLEN frame.
// Taggers write it in milliseconds; a missing or zero value reports false.
func readMP3TLEN(path string) (time.Duration, bool) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"TLEN"}})
	if err != nil {
		return 0, false
	}
	defer id3tag.Close()

	return parseTLEN(getID3TextFrame(id3tag, "TLEN"))
}

func parseTLEN(s string) (time.Duration, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
