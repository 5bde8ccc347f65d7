package manifest

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sample = `{
  "clip_id": "c-1",
  "base_url": "../",
  "video": [
    {"id": "v1-x", "width": 1920, "height": 1080},
    {"id": "v2-y"}
  ],
  "audio": [
    {"id": "a1-y", "bitrate": 128, "codecs": "aac"}
  ]
}`

func TestParse(t *testing.T) {
	Convey("Given a playlist document", t, func() {
		m, err := Parse([]byte(sample))
		So(err, ShouldBeNil)

		Convey("Lists are exposed in order", func() {
			So(m.Video(), ShouldHaveLength, 2)
			So(m.Audio(), ShouldHaveLength, 1)

			id, ok := m.Video()[0].ID()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "v1-x")
		})

		Convey("Missing fields fall back", func() {
			entry := m.Video()[1]
			So(entry.Int("width"), ShouldEqual, 0)
			So(entry.String("codecs", "unknown"), ShouldEqual, "unknown")
		})

		Convey("Present fields are read", func() {
			entry := m.Audio()[0]
			So(entry.Int("bitrate"), ShouldEqual, 128)
			So(entry.String("codecs", "unknown"), ShouldEqual, "aac")
		})

		Convey("Top-level keys keep document order", func() {
			So(m.Keys(), ShouldResemble, []string{"clip_id", "base_url", "video", "audio"})
			So(m.ClipID(), ShouldEqual, "c-1")
		})

		Convey("Pretty output stays valid", func() {
			_, err := Parse(m.Pretty(false))
			So(err, ShouldBeNil)
		})
	})

	Convey("Given documents without stream lists", t, func() {
		m, err := Parse([]byte(`{"clip_id": "c"}`))
		So(err, ShouldBeNil)
		So(m.Video(), ShouldBeEmpty)
		So(m.Audio(), ShouldBeEmpty)
	})

	Convey("Given a non-string id", t, func() {
		m, err := Parse([]byte(`{"video": [{"id": 42}, {}]}`))
		So(err, ShouldBeNil)
		_, ok := m.Video()[0].ID()
		So(ok, ShouldBeFalse)
		_, ok = m.Video()[1].ID()
		So(ok, ShouldBeFalse)
	})

	Convey("Given invalid bodies", t, func() {
		_, err := Parse([]byte(`<html></html>`))
		So(err, ShouldEqual, ErrInvalidDocument)

		_, err = Parse([]byte(`[1, 2]`))
		So(err, ShouldEqual, ErrInvalidDocument)
	})
}
