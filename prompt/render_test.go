package prompt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/key"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	viper.Set(key.IconsVariant, "plain")
}

func TestRender(t *testing.T) {
	Convey("Given a writer", t, func() {
		var out bytes.Buffer

		Convey("Info lines carry the INFO marker", func() {
			Info(&out, "ffmpeg process started...")
			So(out.String(), ShouldEqual, " [INFO] ffmpeg process started...\n")
		})

		Convey("Error lines carry the ERROR marker", func() {
			Error(&out, errors.New("this is not a v2 playlist.json link!\n"))
			So(out.String(), ShouldEqual, " [ERROR] this is not a v2 playlist.json link!\n")
		})

		Convey("Options are numbered with their kind and quality", func() {
			Options(&out, []catalog.Option{
				{Index: 1, Label: "video | 1920x1080 | v1", Variant: catalog.Variant{Kind: catalog.Video, Width: 1920, Height: 1080}},
				{Index: 2, Label: "audio | aac, 128 | a1", Variant: catalog.Variant{Kind: catalog.Audio, Codec: "aac", Bitrate: 128}},
			})
			So(out.String(), ShouldContainSubstring, "1 - video | 1920x1080")
			So(out.String(), ShouldContainSubstring, "2 - audio | aac, 128")
		})

		Convey("Best names both choices", func() {
			Best(&out, "1920x1080", "aac, 128")
			So(out.String(), ShouldContainSubstring, "best video: 1920x1080")
			So(out.String(), ShouldContainSubstring, "best audio: aac, 128")
		})
	})
}

func TestBanner(t *testing.T) {
	Convey("The banner credits the original downloader", t, func() {
		var out bytes.Buffer
		Banner(&out)
		So(out.String(), ShouldContainSubstring, "sk8ordi3")
		So(out.String(), ShouldContainSubstring, "forum.videohelp.com/threads/414958")
		So(out.String(), ShouldContainSubstring, "Please provide v2 playlist.json link")
	})
}
