package player

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavBytes builds a 16-bit stereo PCM file with the given frames.
func wavBytes(rate int, frames [][2]int16) []byte {
	dataSize := len(frames) * 4
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+dataSize))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(2))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate*4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(dataSize))
	for _, f := range frames {
		_ = binary.Write(&b, binary.LittleEndian, f[0])
		_ = binary.Write(&b, binary.LittleEndian, f[1])
	}
	return b.Bytes()
}

// countingFile is an in-memory file that counts Close calls.
type countingFile struct {
	*bytes.Reader
	closes int
}

func (f *countingFile) Close() error {
	f.closes++
	return nil
}

func TestDecode_StreamerClosesFile(t *testing.T) {
	f := &countingFile{Reader: bytes.NewReader(wavBytes(44100, make([][2]int16, 8)))}

	src, err := decode(".wav", f)
	require.NoError(t, err)
	require.NoError(t, src.streamer.Close())

	assert.Equal(t, 1, f.closes)
}

func TestOpen_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tone.WAV")
	frames := make([][2]int16, 100)
	for i := range frames {
		frames[i] = [2]int16{16384, -16384}
	}
	require.NoError(t, os.WriteFile(path, wavBytes(22050, frames), 0o600))

	src, err := open(path)
	require.NoError(t, err)
	defer src.streamer.Close()

	assert.Equal(t, "WAV", src.codec)
	assert.Equal(t, beep.SampleRate(22050), src.format.SampleRate)
	assert.Equal(t, 100, src.streamer.Len())

	buf := make([][2]float64, 10)
	n, ok := src.streamer.Stream(buf)
	require.True(t, ok)
	assert.Equal(t, 10, n)
	assert.InDelta(t, 0.5, buf[0][0], 0.001)
	assert.InDelta(t, -0.5, buf[0][1], 0.001)
	assert.Equal(t, 10, src.streamer.Position())
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.webm")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := open(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := open(filepath.Join(t.TempDir(), "gone.mp3"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.flac")
	require.NoError(t, os.WriteFile(path, []byte("definitely not flac data"), 0o600))

	_, err := open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode .flac")
}
