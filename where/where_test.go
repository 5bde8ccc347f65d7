package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/filesystem"
	"github.com/vimeodl/vimeodl/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("History() lives under Config()", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
		})
	})
}

func TestWorkspace(t *testing.T) {
	Convey("Given a workspace root", t, func() {
		viper.Set(key.PathsWorkspace, "/work")
		defer viper.Set(key.PathsWorkspace, ".")

		Convey("The layout hangs off it", func() {
			So(Bin(), ShouldEqual, filepath.Join("/work", "bin"))
			So(Scratch(), ShouldEqual, filepath.Join("/work", "Downloads", "Temp"))
			So(Finished(), ShouldEqual, filepath.Join("/work", "Downloads", "Finished", "Vimeo"))
		})
	})
}
