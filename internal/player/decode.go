package player

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/tplay/internal/tags"
)

// source is an opened, decodable track. Closing the streamer closes the
// file it reads from.
type source struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	codec    string
}

// open opens path and picks a decoder from its extension.
func open(path string) (*source, error) {
	ext := tags.Ext(path)
	switch ext {
	case tags.ExtMP3, tags.ExtFLAC, tags.ExtWAV, tags.ExtOGG, tags.ExtM4A:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := decode(ext, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", ext, err)
	}
	return src, nil
}

func decode(ext string, f io.ReadSeekCloser) (*source, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
		codec    string
	)

	switch ext {
	case tags.ExtMP3:
		codec = "MP3"
		streamer, format, err = decodeMP3(f)
	case tags.ExtFLAC:
		codec = "FLAC"
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err = tags.SkipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case tags.ExtWAV:
		codec = "WAV"
		streamer, format, err = wav.Decode(f)
	case tags.ExtOGG:
		codec = "VORBIS"
		streamer, format, err = vorbis.Decode(f)
	case tags.ExtM4A:
		streamer, format, codec, err = decodeM4A(f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return &source{streamer: streamer, format: format, codec: codec}, nil
}
