// Package manifest retrieves and exposes the JSON playlist describing the
// encoded renditions of a video.
package manifest

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Manifest is a read-only view over a playlist document.
// Only the video and audio lists are interpreted; everything else is kept opaque.
type Manifest struct {
	raw  []byte
	root gjson.Result
}

// Parse validates body as a JSON object and wraps it.
func Parse(body []byte) (*Manifest, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidDocument
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrInvalidDocument
	}

	return &Manifest{raw: body, root: root}, nil
}

// Video returns the entries of the video list, or none when the key is absent.
func (m *Manifest) Video() []Entry {
	return m.entries("video")
}

// Audio returns the entries of the audio list, or none when the key is absent.
func (m *Manifest) Audio() []Entry {
	return m.entries("audio")
}

func (m *Manifest) entries(path string) []Entry {
	list := m.root.Get(path)
	if !list.IsArray() {
		return nil
	}

	items := list.Array()
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{result: item}
	}
	return entries
}

// ClipID returns the clip identifier, if the document carries one.
func (m *Manifest) ClipID() string {
	return m.root.Get("clip_id").String()
}

// Keys lists the top-level keys in document order.
func (m *Manifest) Keys() []string {
	var keys []string
	m.root.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// Raw returns the body exactly as received.
func (m *Manifest) Raw() []byte {
	return m.raw
}

// Pretty returns the indented document, colorized for terminals when asked.
func (m *Manifest) Pretty(colored bool) []byte {
	out := pretty.Pretty(m.raw)
	if colored {
		out = pretty.Color(out, nil)
	}
	return out
}

// Entry is one rendition in a video or audio list.
type Entry struct {
	result gjson.Result
}

// ID returns the raw entry identifier and whether it is present as a string.
func (e Entry) ID() (string, bool) {
	id := e.result.Get("id")
	if id.Type != gjson.String {
		return "", false
	}
	return id.String(), true
}

// Int returns the integer field name, or 0 when missing.
func (e Entry) Int(name string) int {
	return int(e.result.Get(name).Int())
}

// String returns the string field name, or fallback when missing.
func (e Entry) String(name, fallback string) string {
	value := e.result.Get(name)
	if !value.Exists() {
		return fallback
	}
	return value.String()
}
