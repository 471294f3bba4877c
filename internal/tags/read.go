package tags

import (
	"os"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Read reads title, artist and album from a music file.
// dhowden/tag is tried first; format-specific readers cover files it rejects.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch Ext(path) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2(path)
		case ExtFLAC:
			if t, flacErr := readFLACComments(path); flacErr == nil {
				return t, nil
			}
		}
		return readWithTaglib(path)
	}

	t := &Tag{
		Path:   path,
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
	if t.Artist == "" {
		t.Artist = m.AlbumArtist()
	}
	t.sanitize()
	return t, nil
}

// readWithTaglib reads tags through TagLib, which handles Ogg, M4A and WAV
// files that dhowden/tag cannot parse (e.g. ffmpeg-created M4A, RIFF INFO).
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	t := &Tag{
		Path:   path,
		Title:  tags.get(taglib.Title),
		Artist: tags.get(taglib.Artist, taglib.AlbumArtist),
		Album:  tags.get(taglib.Album),
	}
	t.sanitize()
	return t, nil
}
