package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonhull/tagcodec"
)

// Useful test tool to confirm what the engine actually decodes from a
// tagged media file.
func main() {
	skipBad := flag.Bool("skip-bad", false, "skip frames that fail to decode instead of aborting")
	showV1 := flag.Bool("v1", true, "also look for an ID3v1 trailer")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: tag-dump [-skip-bad] [-v1=false] <file.mp3> [...]")
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "tag-dump").Logger()

	exit := 0
	for _, path := range flag.Args() {
		if err := dump(log, path, *skipBad, *showV1); err != nil {
			log.Error().Err(err).Str("path", path).Msg("dump failed")
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(log zerolog.Logger, path string, skipBad, showV1 bool) error {
	var opts []tagcodec.Option
	if skipBad {
		opts = append(opts, tagcodec.WithSkipBadFrames())
	}

	tag, err := tagcodec.Open(path, opts...)
	if err != nil {
		var notATag *tagcodec.NotATagError
		if errors.As(err, &notATag) {
			log.Info().Str("path", path).Msg("no ID3v2 tag")
		} else {
			return err
		}
	}

	if tag != nil {
		h := tag.Header
		fmt.Printf("%s: ID3v2.%d.%d, %d frames, declared size %d\n",
			path, h.Version, h.Revision, tag.Len(), h.Size)

		for f := range tag.Frames() {
			switch fr := f.(type) {
			case *tagcodec.TextFrame:
				fmt.Printf("  %s (text, enc %d): %q\n", fr.FrameID, fr.Encoding, fr.Text)
			case *tagcodec.BinaryFrame:
				switch fr.FrameID {
				case "COMM", "COM":
					if c, err := tagcodec.DecodeComment(fr); err == nil {
						fmt.Printf("  %s (comment, %s): %q %q\n", fr.FrameID, c.Language, c.Description, c.Text)
						continue
					}
				case "TXXX", "TXX":
					if u, err := tagcodec.DecodeUserText(fr); err == nil {
						fmt.Printf("  %s (user text): %s=%q\n", fr.FrameID, u.Description, u.Value)
						continue
					}
				}
				fmt.Printf("  %s (binary): %d bytes\n", fr.FrameID, len(fr.Data))
			case *tagcodec.UnknownFrame:
				fmt.Printf("  %s (unknown): %d bytes\n", fr.FrameID, len(fr.Raw))
			}
		}

		for _, w := range tag.Warnings {
			log.Warn().Str("path", path).Msg(w.String())
		}
	}

	if !showV1 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	v1, err := tagcodec.ParseV1(data)
	if err != nil {
		var notATag *tagcodec.NotATagError
		if errors.As(err, &notATag) {
			return nil
		}
		return err
	}
	fmt.Printf("  ID3v1: %q / %q / %q (%s)\n", v1.Title, v1.Artist, v1.Album, v1.Year)
	return nil
}
