package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vimeodl/vimeodl/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my  movie"), ShouldEqual, "my_movie")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestSafeFilename(t *testing.T) {
	Convey("SafeFilename", t, func() {
		Convey("Should keep spaces and punctuation", func() {
			So(SafeFilename("My Movie: Part 1"), ShouldEqual, "My Movie: Part 1")
		})
		Convey("Should neutralize path separators", func() {
			So(SafeFilename("../etc/passwd"), ShouldEqual, ".._etc_passwd")
			So(SafeFilename(`a\b`), ShouldEqual, "a_b")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "stream", "streams"), ShouldEqual, "1 stream")
		So(Quantify(3, "stream", "streams"), ShouldEqual, "3 streams")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("scratch"), ShouldEqual, "Scratch")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory tree", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/tree/sub", 0755), ShouldBeNil)
		So(fs.WriteFile("/tmp/tree/sub/a.mp4", []byte("x"), 0644), ShouldBeNil)

		Convey("Delete removes it recursively", func() {
			So(Delete("/tmp/tree"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/tree")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete of a missing path errors", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}
