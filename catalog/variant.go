package catalog

import (
	"fmt"
)

// Kind tells video renditions from audio renditions.
type Kind int

const (
	Video Kind = iota
	Audio
)

// String returns the tag used in option labels.
func (k Kind) String() string {
	if k == Audio {
		return "audio"
	}
	return "video"
}

// Extension is the suffix of the scratch file a stream of this kind is saved to.
func (k Kind) Extension() string {
	if k == Audio {
		return ".aac"
	}
	return ".mp4"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Variant is one downloadable rendition derived from a manifest entry.
type Variant struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind" jsonschema:"type=string,enum=video,enum=audio"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	Codec   string `json:"codec,omitempty"`
	Bitrate int    `json:"bitrate,omitempty"`

	URL string `json:"url"`
}

// Label is the human-readable quality: "1920x1080" for video, "aac, 128" for audio.
func (v Variant) Label() string {
	if v.Kind == Audio {
		return fmt.Sprintf("%s, %d", v.Codec, v.Bitrate)
	}
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Filename is the scratch file name the stream is downloaded to.
func (v Variant) Filename() string {
	return v.Label() + v.Kind.Extension()
}
