package catalog

import "strings"

// Option is a numbered entry offered for manual selection.
type Option struct {
	Index   int     `json:"index"`
	Label   string  `json:"label"`
	URL     string  `json:"url"`
	Variant Variant `json:"-"`
}

// Kind reads the kind tag at the start of the label.
func (o Option) Kind() (Kind, bool) {
	tag, _, _ := strings.Cut(o.Label, "|")
	switch strings.TrimSpace(tag) {
	case Video.String():
		return Video, true
	case Audio.String():
		return Audio, true
	default:
		return 0, false
	}
}
