package player

import "encoding/binary"

const (
	scale16 = 1 << 15
	scale24 = 1 << 23
)

// framesFromInt16 converts interleaved 16-bit samples to stereo frames.
// Mono is duplicated to both sides; channels beyond two are dropped.
func framesFromInt16(pcm []int16, channels int) [][2]float64 {
	channels = max(channels, 1)
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		base := i * channels
		left := float64(pcm[base]) / scale16
		right := left
		if channels > 1 {
			right = float64(pcm[base+1]) / scale16
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// framesFromLE16 converts interleaved little-endian 16-bit PCM bytes.
func framesFromLE16(data []byte, channels int) [][2]float64 {
	channels = max(channels, 1)
	stride := 2 * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		left := float64(int16(binary.LittleEndian.Uint16(data[off:]))) / scale16 //nolint:gosec // audio samples
		right := left
		if channels > 1 {
			right = float64(int16(binary.LittleEndian.Uint16(data[off+2:]))) / scale16 //nolint:gosec // audio samples
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// framesFromLE24 converts interleaved little-endian 24-bit PCM bytes.
func framesFromLE24(data []byte, channels int) [][2]float64 {
	channels = max(channels, 1)
	stride := 3 * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		left := float64(int24(data[off:])) / scale24
		right := left
		if channels > 1 {
			right = float64(int24(data[off+3:])) / scale24
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// int24 reads a sign-extended little-endian 24-bit integer.
func int24(b []byte) int32 {
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}
