package playlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}
}

func noMetadata(string) (Metadata, error) {
	return Metadata{}, nil
}

func paths(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, tr := range tracks {
		out[i] = tr.Path
	}
	return out
}

func TestScan_FiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"b/02.flac",
		"a.mp3",
		"b/01.OGG",
		"c/clip.webm",
		"notes.txt",
		"c/deep/x.M4A",
		"z.wav",
		"cover.jpg",
	)

	tracks, err := Scanner{Metadata: noMetadata}.Scan(context.Background(), root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.mp3"),
		filepath.Join(root, "b/01.OGG"),
		filepath.Join(root, "b/02.flac"),
		filepath.Join(root, "c/deep/x.M4A"),
		filepath.Join(root, "z.wav"),
	}
	assert.Equal(t, want, paths(tracks))
}

func TestScan_StableAcrossRuns(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "3.mp3", "1.mp3", "sub/2.mp3", "10.mp3")

	s := Scanner{Metadata: noMetadata, Workers: 2}
	first, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	second, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, paths(first), paths(second))
}

func TestScan_SingleFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "song.Mp3")

	tracks, err := Scanner{Metadata: noMetadata}.Scan(context.Background(), filepath.Join(root, "song.Mp3"))
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "song", tracks[0].Name)
	assert.True(t, filepath.IsAbs(tracks[0].Path))
}

func TestScan_SingleUnsupportedFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "video.webm")

	_, err := Scanner{Metadata: noMetadata}.Scan(context.Background(), filepath.Join(root, "video.webm"))
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestScan_EmptyResult(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "readme.md", "art/cover.png")

	tracks, err := Scanner{Metadata: noMetadata}.Scan(context.Background(), root)
	assert.ErrorIs(t, err, ErrNoTracks)
	assert.Nil(t, tracks)
	assert.Equal(t, "no supported audio files found", ErrNoTracks.Error())
}

func TestScan_BadPath(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrBadPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan_MetadataApplied(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.mp3", "b.mp3")

	read := func(path string) (Metadata, error) {
		if filepath.Base(path) == "a.mp3" {
			return Metadata{Title: "Alpha", Artist: "Band", Duration: 3 * time.Minute}, nil
		}
		return Metadata{}, errors.New("no tags")
	}

	tracks, err := Scanner{Metadata: read}.Scan(context.Background(), root)
	require.NoError(t, err, "metadata errors must not fail the scan")
	require.Len(t, tracks, 2)

	assert.Equal(t, "Alpha", tracks[0].Name)
	assert.Equal(t, "Band", tracks[0].Artist)
	assert.True(t, tracks[0].Known())

	assert.Equal(t, "b", tracks[1].Name)
	assert.False(t, tracks[1].Known())
	assert.Equal(t, DefaultDuration, tracks[1].Estimate())
}

func TestScan_BoundedWorkers(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"1.mp3", "2.mp3", "3.mp3", "4.mp3", "5.mp3", "6.mp3"} {
		touch(t, root, name)
	}

	var inFlight, peak atomic.Int32
	read := func(string) (Metadata, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return Metadata{}, nil
	}

	tracks, err := Scanner{Metadata: read, Workers: 2}.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, tracks, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScan_Canceled(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.mp3", "b.mp3")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scanner{Metadata: noMetadata}.Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp3", true},
		{"a.MP3", true},
		{"a.wav", true},
		{"a.ogg", true},
		{"a.Flac", true},
		{"a.m4a", true},
		{"a.webm", false},
		{"a.opus", false},
		{"mp3", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupported(tt.path))
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	assert.ElementsMatch(t, []string{"mp3", "wav", "ogg", "flac", "m4a"}, SupportedExtensions())
}
