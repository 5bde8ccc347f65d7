package selection

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/manifest"
)

func build(body string) *catalog.Catalog {
	m, err := manifest.Parse([]byte(body))
	if err != nil {
		panic(err)
	}
	c, err := catalog.Build("https://X.exp.Y.hmac.Z", m)
	if err != nil {
		panic(err)
	}
	return c
}

// Options: 1-3 video (1080p, 720p, 360p), 4-5 audio (128, 64).
const threeByTwo = `{
	"video": [
		{"id": "p720-a", "width": 1280, "height": 720},
		{"id": "p1080-a", "width": 1920, "height": 1080},
		{"id": "p360-a", "width": 640, "height": 360}
	],
	"audio": [
		{"id": "lo-a", "bitrate": 64, "codecs": "aac"},
		{"id": "hi-a", "bitrate": 128, "codecs": "aac"}
	]
}`

func TestParseMode(t *testing.T) {
	Convey("ParseMode", t, func() {
		mode, err := ParseMode("yes")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, Automatic)

		mode, err = ParseMode("no")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, Manual)
		So(mode.String(), ShouldEqual, "no")

		_, err = ParseMode("maybe")
		So(errors.Is(err, ErrInvalidMode), ShouldBeTrue)
	})
}

func TestAuto(t *testing.T) {
	Convey("Given both sequences are non-empty", t, func() {
		c := build(threeByTwo)
		outcome := Auto(c)

		Convey("Index 0 of each is chosen", func() {
			So(outcome.Complete(), ShouldBeTrue)
			So(outcome.Video.MustGet(), ShouldResemble, c.Video[0])
			So(outcome.Audio.MustGet(), ShouldResemble, c.Audio[0])
			So(outcome.Video.MustGet().ID, ShouldEqual, "p1080")
			So(outcome.Audio.MustGet().ID, ShouldEqual, "hi")
		})
	})

	Convey("Given no audio", t, func() {
		outcome := Auto(build(`{"video": [{"id": "v-1", "width": 1, "height": 1}]}`))

		Convey("Audio is absent and the outcome is incomplete", func() {
			So(outcome.Video.IsPresent(), ShouldBeTrue)
			So(outcome.Audio.IsPresent(), ShouldBeFalse)
			So(outcome.Complete(), ShouldBeFalse)
			So(outcome.Variants(), ShouldHaveLength, 1)
		})
	})
}

func TestManual(t *testing.T) {
	Convey("Given the numbered options", t, func() {
		options := build(threeByTwo).Options()

		Convey("A video and an audio index choose both", func() {
			outcome, indices, err := FromInput(options, "2 5")
			So(err, ShouldBeNil)
			So(indices, ShouldResemble, []int{2, 5})
			So(outcome.Complete(), ShouldBeTrue)
			So(outcome.Video.MustGet().ID, ShouldEqual, "p720")
			So(outcome.Audio.MustGet().ID, ShouldEqual, "lo")
		})

		Convey("Two video indices keep the later one and no audio", func() {
			outcome, _, err := FromInput(options, "1 3")
			So(err, ShouldBeNil)
			So(outcome.Video.MustGet().ID, ShouldEqual, "p360")
			So(outcome.Audio.IsPresent(), ShouldBeFalse)
			So(outcome.Complete(), ShouldBeFalse)
		})

		Convey("Out-of-range indices are ignored", func() {
			outcome, _, err := FromInput(options, "0 9 -1 4 42")
			So(err, ShouldBeNil)
			So(outcome.Video.IsPresent(), ShouldBeFalse)
			So(outcome.Audio.MustGet().ID, ShouldEqual, "hi")
		})

		Convey("Extra whitespace is tolerated", func() {
			outcome, _, err := FromInput(options, "  1\t\t4  ")
			So(err, ShouldBeNil)
			So(outcome.Complete(), ShouldBeTrue)
		})

		Convey("Empty input chooses nothing", func() {
			outcome, indices, err := FromInput(options, "")
			So(err, ShouldBeNil)
			So(indices, ShouldBeEmpty)
			So(outcome.Variants(), ShouldBeEmpty)
		})

		Convey("A non-integer token is rejected", func() {
			_, _, err := FromInput(options, "1 four")
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
		})
	})
}
