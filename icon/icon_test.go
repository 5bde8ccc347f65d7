package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

func TestGet(t *testing.T) {
	Convey("Given the registered icons", t, func() {
		all := []Icon{Success, Fail, Progress, Video, Audio, Link}

		Convey("They render for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for _, i := range all {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("Plain variant uses ASCII words", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Fail), ShouldEqual, "Error")
		})

		Convey("An unknown variant renders empty", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}
