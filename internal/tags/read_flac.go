package tags

import (
	"errors"
	"time"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

var errNoVorbisComment = errors.New("flac: no vorbis comment block")

// readFLACComments reads the Vorbis comment block of a FLAC file directly.
func readFLACComments(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		t := &Tag{
			Path:   path,
			Title:  firstComment(cmt, flacvorbis.FIELD_TITLE),
			Artist: firstComment(cmt, flacvorbis.FIELD_ARTIST, "ALBUMARTIST"),
			Album:  firstComment(cmt, flacvorbis.FIELD_ALBUM),
		}
		t.sanitize()
		return t, nil
	}
	return nil, errNoVorbisComment
}

func firstComment(cmt *flacvorbis.MetaDataBlockVorbisComment, keys ...string) string {
	for _, key := range keys {
		if values, err := cmt.Get(key); err == nil && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// readFLACStreamInfo computes the duration from the STREAMINFO block.
func readFLACStreamInfo(path string) (time.Duration, bool) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return 0, false
	}
	for _, meta := range f.Meta {
		if meta.Type == goflac.StreamInfo {
			return streamInfoDuration(meta.Data)
		}
	}
	return 0, false
}

// streamInfoDuration decodes sample rate (20 bits at byte 10) and total
// samples (36 bits at byte 13) from a raw STREAMINFO block.
func streamInfoDuration(data []byte) (time.Duration, bool) {
	if len(data) < 18 {
		return 0, false
	}
	sampleRate := int64(data[10])<<12 | int64(data[11])<<4 | int64(data[12])>>4
	totalSamples := int64(data[13]&0x0F)<<32 | int64(data[14])<<24 | int64(data[15])<<16 | int64(data[16])<<8 | int64(data[17])
	if sampleRate == 0 || totalSamples == 0 {
		return 0, false
	}
	return samplesToDuration(totalSamples, sampleRate), true
}
