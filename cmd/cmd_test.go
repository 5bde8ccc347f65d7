package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/tool"
	"github.com/vimeodl/vimeodl/where"
)

func TestParseValue(t *testing.T) {
	Convey("Given typed configuration keys", t, func() {
		Convey("Integers are parsed", func() {
			v, err := parseValue(key.DownloaderConcurrency, []string{"8"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 8)
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(key.DownloadStrict, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Strings pass through", func() {
			v, err := parseValue(key.MuxerPath, []string{"/opt/ffmpeg"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "/opt/ffmpeg")
		})

		Convey("Bad numbers are rejected", func() {
			_, err := parseValue(key.DownloaderConcurrency, []string{"many"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestUnknownKey(t *testing.T) {
	Convey("A misspelled key suggests the closest one", t, func() {
		err := errUnknownKey("muxer.pth")
		So(errors.Is(err, errUnknownKeyBase), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, key.MuxerPath)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Every key and the config path override are listed", t, func() {
		names := envNames()
		So(names, ShouldContain, "VIMEODL_DOWNLOADER_PATH")
		So(names, ShouldContain, where.EnvConfigPath)
		So(len(names), ShouldEqual, key.DefinedFieldsCount+1)
	})
}

func TestInstallHint(t *testing.T) {
	Convey("A dependency with its own hint keeps it", t, func() {
		So(installHint(tool.Dependency{Name: "yt-dlp", Install: "pip install yt-dlp"}), ShouldEqual, "pip install yt-dlp")
	})

	Convey("Other dependencies get a platform hint", t, func() {
		So(installHint(tool.Dependency{Name: "ffmpeg"}), ShouldNotBeEmpty)
	})
}

func TestRejectedInput(t *testing.T) {
	Convey("Given input cobra rejects before running", t, func() {
		lipgloss.SetColorProfile(termenv.Ascii)

		var usage bytes.Buffer
		rootCmd.SetOut(&usage)
		rootCmd.SetErr(&usage)
		defer func() {
			rootCmd.SetArgs([]string{})
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
		}()

		Convey("An unknown flag is returned instead of printed", func() {
			rootCmd.SetArgs([]string{"--bogus"})
			err := rootCmd.Execute()
			So(err, ShouldNotBeNil)
			So(usage.String(), ShouldNotContainSubstring, "Error:")

			Convey("And is reported with the ERROR marker", func() {
				var out bytes.Buffer
				reportErr(&out, err)
				So(out.String(), ShouldStartWith, " [ERROR] ")
				So(out.String(), ShouldContainSubstring, "bogus")
			})
		})

		Convey("A missing dependency is reported with its install hint", func() {
			var out bytes.Buffer
			reportErr(&out, &tool.MissingError{
				Dependency: tool.Dependency{Name: "yt-dlp", Path: "yt-dlp", Install: "pip install yt-dlp"},
				Err:        errors.New("not found"),
			})
			So(out.String(), ShouldContainSubstring, "yt-dlp is not installed")
			So(out.String(), ShouldContainSubstring, "pip install yt-dlp")
		})
	})
}
