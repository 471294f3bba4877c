package playlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/tplay/internal/tags"
)

var (
	// ErrNoTracks is returned when a scan finds no playable file.
	ErrNoTracks = errors.New("no supported audio files found")
	// ErrBadPath is returned when the scan root cannot be read.
	ErrBadPath = errors.New("cannot read path")
)

// supportedExts lists the extensions the player can decode, lower case.
var supportedExts = []string{tags.ExtMP3, tags.ExtWAV, tags.ExtOGG, tags.ExtFLAC, tags.ExtM4A}

// IsSupported reports whether path has a playable extension (case-insensitive).
func IsSupported(path string) bool {
	return slices.Contains(supportedExts, tags.Ext(path))
}

// SupportedExtensions returns the playable extensions without the leading dot.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExts))
	for i, ext := range supportedExts {
		out[i] = strings.TrimPrefix(ext, ".")
	}
	return out
}

// MetadataFunc reads the metadata of one file. Errors are not fatal:
// the scan keeps the track with whatever the function returned.
type MetadataFunc func(path string) (Metadata, error)

// ReadMetadata reads tags and duration from an audio file.
func ReadMetadata(path string) (Metadata, error) {
	var meta Metadata
	t, err := tags.Read(path)
	if t != nil {
		meta.Title = t.Title
		meta.Artist = t.Artist
		meta.Album = t.Album
	}
	if d, ok := tags.Duration(path); ok {
		meta.Duration = d
	}
	return meta, err
}

// Scanner turns a file or directory into an ordered list of tracks.
type Scanner struct {
	// Workers bounds concurrent metadata reads. Zero means runtime.NumCPU().
	Workers int
	// Metadata reads per-file metadata. Nil means ReadMetadata.
	Metadata MetadataFunc
}

// Scan scans path with the default scanner.
func Scan(ctx context.Context, path string) ([]Track, error) {
	return Scanner{}.Scan(ctx, path)
}

// Scan returns the playable files under path sorted by path.
// A single supported file yields a one-track queue. Unsupported files are
// skipped silently; an empty result is ErrNoTracks.
func (s Scanner) Scan(ctx context.Context, path string) ([]Track, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, path, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, path, err)
	}

	var paths []string
	if info.IsDir() {
		paths, err = collect(ctx, root)
		if err != nil {
			return nil, err
		}
	} else if IsSupported(root) {
		paths = []string{root}
	}

	if len(paths) == 0 {
		return nil, ErrNoTracks
	}

	tracks, err := s.readAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("root", root).Int("tracks", len(tracks)).Msg("scan complete")
	return tracks, nil
}

// collect walks root recursively and returns supported files in
// lexicographic path order.
func collect(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Debug().Err(walkErr).Str("path", path).Msg("skipping unreadable entry")
			// Skip directories/files with errors, continue walking
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}

// readAll reads metadata for every path with bounded concurrency.
// The result keeps the order of paths.
func (s Scanner) readAll(ctx context.Context, paths []string) ([]Track, error) {
	read := s.Metadata
	if read == nil {
		read = ReadMetadata
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tracks := make([]Track, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			meta, err := read(path)
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("metadata unavailable")
			}
			tracks[i] = NewTrack(path, meta)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tracks, nil
}
