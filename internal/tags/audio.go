package tags

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
	"github.com/rs/zerolog/log"
	"go.senan.xyz/taglib"
)

var errInvalidSampleRate = errors.New("invalid sample rate")

// Duration returns the playing time of an audio file, or false when it
// cannot be determined. Header or tag based readers are preferred over
// decoding; TagLib is the last resort for every format.
func Duration(path string) (time.Duration, bool) {
	d, err := probeDuration(path)
	if err == nil && d > 0 {
		return d, true
	}
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("duration probe failed, trying taglib")
	}

	props, err := taglib.ReadProperties(path)
	if err != nil || props.Length <= 0 {
		return 0, false
	}
	return props.Length, true
}

func probeDuration(path string) (time.Duration, error) {
	ext := Ext(path)
	switch ext {
	case ExtMP3:
		if d, ok := readMP3TLEN(path); ok {
			return d, nil
		}
	case ExtFLAC:
		if d, ok := readFLACStreamInfo(path); ok {
			return d, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	switch ext {
	case ExtMP3:
		return readMP3Duration(f)
	case ExtFLAC:
		return readBeepDuration(f, flacDecode)
	case ExtWAV:
		return readBeepDuration(f, wav.Decode)
	case ExtOGG:
		return readOggDuration(f)
	case ExtM4A:
		return readM4ADuration(f)
	}
	return 0, errors.New("unsupported format: " + ext)
}

// readMP3Duration counts frames with go-mp3 without decoding audio.
func readMP3Duration(f *os.File) (time.Duration, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, err
	}
	rate := decoder.SampleRate()
	if rate <= 0 {
		return 0, errInvalidSampleRate
	}
	return samplesToDuration(int64(max(decoder.SampleCount(), 0)), int64(rate)), nil
}

func readM4ADuration(f *os.File) (time.Duration, error) {
	container, err := m4a.Open(f)
	if err != nil {
		return 0, err
	}
	return container.Duration(), nil
}

type beepDecodeFunc func(io.Reader) (beep.StreamSeekCloser, beep.Format, error)

// flacDecode skips a prepended ID3v2 tag before handing the file to beep.
func flacDecode(r io.Reader) (beep.StreamSeekCloser, beep.Format, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		if err := SkipID3v2(rs); err != nil {
			return nil, beep.Format{}, err
		}
	}
	return flac.Decode(r)
}

// readBeepDuration uses a beep decoder's header-derived length.
func readBeepDuration(f *os.File, decode beepDecodeFunc) (time.Duration, error) {
	streamer, format, err := decode(f)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	if format.SampleRate <= 0 {
		return 0, errInvalidSampleRate
	}
	return format.SampleRate.D(streamer.Len()), nil
}

func samplesToDuration(samples, sampleRate int64) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// SkipID3v2 skips an ID3v2 tag if present at the beginning of r.
// Some taggers prepend one to FLAC files, which FLAC decoders reject.
func SkipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is stored as a syncsafe integer in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
