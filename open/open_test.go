package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a finished file", t, func() {
		target := "/ws/Downloads/Finished/Vimeo/1920x1080_Movie.mp4"

		Convey("Linux uses xdg-open", func() {
			cmd, err := Command("linux", target)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", target})
		})

		Convey("macOS uses open", func() {
			cmd, err := Command("darwin", target)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", target})
		})

		Convey("Unknown platforms are rejected", func() {
			_, err := Command("plan9", target)
			So(err, ShouldEqual, ErrUnsupportedOS)
		})
	})
}
