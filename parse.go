package tagcodec

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/tagcodec/internal/id3v2"
	"github.com/simonhull/tagcodec/internal/registry"
	"github.com/simonhull/tagcodec/internal/types"
)

// Parse decodes a tag from the start of data.
//
// The buffer must be fully resident; Parse performs no I/O. A buffer
// that does not begin with the tag magic fails with NotATagError,
// which callers scanning arbitrary media can treat as a clean miss.
//
// The default behavior is fail-fast: the first structural violation
// (truncated frame, invalid identifier, undefined text encoding)
// aborts the parse. WithSkipBadFrames downgrades per-frame decode
// failures to warnings; frame-boundary violations stay fatal because
// continuing past one would misalign the remainder of the stream.
//
// Example:
//
//	tag, err := tagcodec.Parse(data)
//	if err != nil {
//		return err
//	}
//	fmt.Println(tag.Text("TIT2"))
func Parse(data []byte, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return parse(data, options)
}

func parse(data []byte, options *parseOptions) (*Tag, error) {
	header, frameStart, err := id3v2.ParseHeader(data, options.path)
	if err != nil {
		return nil, err
	}

	tag := &Tag{Header: *header}

	bodyEnd := id3v2.HeaderLen + int(header.Size)
	stream := id3v2.NewStream(header, data[frameStart:bodyEnd], frameStart)

	for raw, err := range stream.All() {
		if err != nil {
			return nil, err
		}

		if options.maxFrameSize > 0 && len(raw.Payload) > options.maxFrameSize {
			err = fmt.Errorf("frame %s at offset %d: payload of %d bytes exceeds limit %d",
				raw.ID, raw.Offset, len(raw.Payload), options.maxFrameSize)
		}

		var frame types.Frame
		if err == nil {
			frame, err = registry.Decode(raw.ID, raw.Flags, raw.Payload)
		}

		if err != nil {
			if !options.skipBadFrames {
				return nil, err
			}
			tag.Warnings = append(tag.Warnings, Warning{
				Stage:   "frame",
				Message: err.Error(),
				Offset:  raw.Offset,
			})
			continue
		}

		tag.frames = append(tag.frames, frame)
	}

	return tag, nil
}

// Open reads a file and parses the tag at its start.
//
// File retrieval is the only I/O this library performs; everything
// after the read operates on the in-memory buffer.
func Open(path string, opts ...Option) (*Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	options.path = path

	return parse(data, options)
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before
// starting; parsing itself is bounded by the buffer size and needs no
// cancellation points.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// ParseFiles opens and parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU()
// goroutines. Results are returned in the same order as the input
// paths. If any file fails, the first error is returned and the
// remaining results are discarded.
//
// Example:
//
//	tags, err := tagcodec.ParseFiles(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range tags {
//		fmt.Println(tag.Text("TIT2"))
//	}
func ParseFiles(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
