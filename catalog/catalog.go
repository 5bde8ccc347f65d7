// Package catalog turns manifest entries into ranked, downloadable stream variants.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/vimeodl/vimeodl/manifest"
	"golang.org/x/exp/slices"
)

var (
	// ErrMalformedStreamEntry is returned when an entry id is missing or has no hyphen.
	ErrMalformedStreamEntry = errors.New("malformed stream entry")

	// ErrNoVideoStreamsFound is returned when the manifest lists no video renditions.
	ErrNoVideoStreamsFound = errors.New("no video streams found in response")
)

// DefaultCodec labels audio entries that do not declare their codecs.
const DefaultCodec = "unknown"

// Catalog holds the ranked variants of one manifest, best first.
type Catalog struct {
	Video []Variant `json:"video"`
	Audio []Variant `json:"audio"`
}

// StreamID returns the part of a raw manifest id before its first hyphen.
func StreamID(raw string) (string, error) {
	id, _, found := strings.Cut(raw, "-")
	if !found {
		return "", fmt.Errorf("%w: id %q has no hyphen", ErrMalformedStreamEntry, raw)
	}
	return id, nil
}

// Build extracts and ranks the variants of m. Download URLs are rooted at prefix,
// the signed base path returned by manifest.Prefix.
func Build(prefix string, m *manifest.Manifest) (*Catalog, error) {
	video, err := extract(prefix, Video, m.Video())
	if err != nil {
		return nil, err
	}

	if len(video) == 0 {
		return nil, ErrNoVideoStreamsFound
	}

	audio, err := extract(prefix, Audio, m.Audio())
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(video, func(a, b Variant) int {
		if c := cmp.Compare(b.Width, a.Width); c != 0 {
			return c
		}
		return cmp.Compare(b.Height, a.Height)
	})

	slices.SortStableFunc(audio, func(a, b Variant) int {
		return cmp.Compare(b.Bitrate, a.Bitrate)
	})

	return &Catalog{Video: video, Audio: audio}, nil
}

func extract(prefix string, kind Kind, entries []manifest.Entry) ([]Variant, error) {
	variants := make([]Variant, 0, len(entries))

	for i, entry := range entries {
		raw, ok := entry.ID()
		if !ok {
			return nil, fmt.Errorf("%w: %s entry %d has no id", ErrMalformedStreamEntry, kind, i)
		}

		id, err := StreamID(raw)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", kind, i, err)
		}

		v := Variant{
			ID:   id,
			Kind: kind,
			URL:  fmt.Sprintf("%s/parcel/%s/%s.mp4", prefix, kind, id),
		}

		switch kind {
		case Video:
			v.Width = entry.Int("width")
			v.Height = entry.Int("height")
		case Audio:
			v.Codec = entry.String("codecs", DefaultCodec)
			v.Bitrate = entry.Int("bitrate")
		}

		variants = append(variants, v)
	}

	return variants, nil
}

// Options numbers every variant for manual selection, videos first.
func (c *Catalog) Options() []Option {
	options := make([]Option, 0, len(c.Video)+len(c.Audio))

	for _, group := range [][]Variant{c.Video, c.Audio} {
		for _, v := range group {
			options = append(options, Option{
				Index:   len(options) + 1,
				Label:   fmt.Sprintf("%s | %s | %s", v.Kind, v.Label(), v.ID),
				URL:     v.URL,
				Variant: v,
			})
		}
	}

	return options
}
