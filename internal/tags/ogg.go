package tags

import (
	"encoding/binary"
	"errors"
	"io"
	"time"

	"github.com/jfreymuth/vorbis"
)

var (
	errNotOgg          = errors.New("ogg: invalid capture pattern")
	errNoGranule       = errors.New("ogg: no granule position found")
	errNotVorbisStream = errors.New("ogg: first packet is not a vorbis identification header")
)

const (
	oggPageHeaderLen = 27
	// oggTailWindow is how much of the file end is searched for the last page.
	oggTailWindow = 64 * 1024
)

// readOggDuration returns the length of an Ogg Vorbis stream: the granule
// position of the last page divided by the sample rate of the
// identification header.
func readOggDuration(r io.ReadSeeker) (time.Duration, error) {
	packet, err := readFirstOggPacket(r)
	if err != nil {
		return 0, err
	}

	var dec vorbis.Decoder
	if err := dec.ReadHeader(packet); err != nil {
		return 0, errors.Join(errNotVorbisStream, err)
	}
	rate := int64(dec.SampleRate())
	if rate <= 0 {
		return 0, errNotVorbisStream
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	window := min(int64(oggTailWindow), size)
	if _, err := r.Seek(-window, io.SeekEnd); err != nil {
		return 0, err
	}
	tail := make([]byte, window)
	if _, err := io.ReadFull(r, tail); err != nil {
		return 0, err
	}

	granule, ok := lastGranule(tail)
	if !ok {
		return 0, errNoGranule
	}
	return samplesToDuration(granule, rate), nil
}

// readFirstOggPacket returns the first packet of the first page, which for
// Vorbis is the identification header.
func readFirstOggPacket(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var hdr [oggPageHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if string(hdr[0:4]) != "OggS" {
		return nil, errNotOgg
	}
	segments := make([]byte, hdr[26])
	if _, err := io.ReadFull(r, segments); err != nil {
		return nil, err
	}

	// A packet ends at the first lacing value below 255.
	size := 0
	for _, s := range segments {
		size += int(s)
		if s < 255 {
			break
		}
	}
	packet := make([]byte, size)
	if _, err := io.ReadFull(r, packet); err != nil {
		return nil, err
	}
	return packet, nil
}

// lastGranule scans buf backwards for the last "OggS" page header that
// carries a valid granule position.
func lastGranule(buf []byte) (int64, bool) {
	for i := len(buf) - oggPageHeaderLen; i >= 0; i-- {
		if buf[i] != 'O' || string(buf[i:i+4]) != "OggS" {
			continue
		}
		granule := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14])) //nolint:gosec // granule positions fit in int64
		if granule > 0 {
			return granule, true
		}
	}
	return 0, false
}
