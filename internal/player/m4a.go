package player

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

var errUnknownM4ACodec = errors.New("m4a: unsupported codec")

// alacFrameSize is the ALAC default frames-per-packet.
const alacFrameSize = 4096

// frameDecoder turns one container sample into stereo frames.
type frameDecoder interface {
	decode(sample []byte) ([][2]float64, error)
	close()
}

// aacFrames decodes AAC access units with go-faad2.
type aacFrames struct {
	dec      *faad2.Decoder
	channels int
}

func newAACFrames(cfg []byte, channels int) (*aacFrames, error) {
	ctx := context.Background()
	dec, err := faad2.NewDecoder(ctx)
	if err != nil {
		return nil, err
	}
	if err := dec.Init(ctx, cfg); err != nil {
		dec.Close(ctx)
		return nil, err
	}
	return &aacFrames{dec: dec, channels: channels}, nil
}

func (a *aacFrames) decode(sample []byte) ([][2]float64, error) {
	pcm, err := a.dec.Decode(context.Background(), sample)
	if err != nil {
		return nil, err
	}
	return framesFromInt16(pcm, a.channels), nil
}

func (a *aacFrames) close() {
	a.dec.Close(context.Background())
}

// alacFrames decodes Apple Lossless packets (16 or 24 bit).
type alacFrames struct {
	dec        *alac.Alac
	channels   int
	sampleSize int
}

func (a *alacFrames) decode(sample []byte) ([][2]float64, error) {
	raw := a.dec.Decode(sample)
	if a.sampleSize == 24 {
		return framesFromLE24(raw, a.channels), nil
	}
	return framesFromLE16(raw, a.channels), nil
}

func (a *alacFrames) close() {}

// m4aStream streams an MP4 audio container through a frameDecoder.
type m4aStream struct {
	container *m4a.Reader
	closer    io.Closer
	frames    frameDecoder
	next      int // next container sample index
	total     int // length in frames
	pending   [][2]float64
	err       error
}

// decodeM4A opens an M4A container and selects an AAC or ALAC decoder.
// The returned codec name is "AAC" or "ALAC".
func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, string, error) {
	container, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, "", err
	}

	rate := int(container.SampleRate())
	channels := int(container.Channels())
	sampleSize := int(container.SampleSize())

	var frames frameDecoder
	precision := 2
	switch container.Codec() {
	case m4a.CodecAAC:
		frames, err = newAACFrames(container.CodecConfig(), channels)
	case m4a.CodecALAC:
		var dec *alac.Alac
		dec, err = alac.NewWithConfig(alac.Config{
			SampleRate:  rate,
			SampleSize:  sampleSize,
			NumChannels: channels,
			FrameSize:   alacFrameSize,
		})
		frames = &alacFrames{dec: dec, channels: channels, sampleSize: sampleSize}
		if sampleSize == 24 {
			precision = 3
		}
	default:
		err = errUnknownM4ACodec
	}
	if err != nil {
		return nil, beep.Format{}, "", err
	}

	s := &m4aStream{
		container: container,
		closer:    rc,
		frames:    frames,
		total:     int(container.Duration().Seconds() * float64(rate)),
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   precision,
	}
	return s, format, container.Codec().String(), nil
}

func (s *m4aStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	for n < len(samples) {
		if len(s.pending) > 0 {
			c := copy(samples[n:], s.pending)
			s.pending = s.pending[c:]
			n += c
			continue
		}
		if s.next >= s.container.SampleCount() {
			break
		}

		data, err := s.container.ReadSample(s.next)
		if err != nil {
			s.err = err
			break
		}
		s.next++

		s.pending, err = s.frames.decode(data)
		if err != nil {
			s.err = err
			break
		}
	}
	return n, n > 0
}

func (s *m4aStream) Err() error { return s.err }

func (s *m4aStream) Len() int { return s.total }

func (s *m4aStream) Position() int {
	rate := float64(s.container.SampleRate())
	return int(s.container.SampleTime(s.next).Seconds() * rate)
}

func (s *m4aStream) Seek(p int) error {
	p = min(max(p, 0), s.total)
	rate := float64(s.container.SampleRate())
	at := time.Duration(float64(p) / rate * float64(time.Second))

	s.next = s.container.SeekToTime(at)
	s.pending = nil
	s.err = nil
	return nil
}

func (s *m4aStream) Close() error {
	s.frames.close()
	return s.closer.Close()
}
