package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("A higher patch is newer", func() {
			comp, err := Compare("0.3.2", "0.3.1")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 1)
		})

		Convey("The v prefix is ignored", func() {
			comp, err := Compare("v1.0.0", "1.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 0)
		})

		Convey("Major outranks minor", func() {
			comp, err := Compare("0.9.9", "1.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, -1)
		})

		Convey("Garbage is an error", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		body := `{"tag_name": "v1.2.3"}`
		status := http.StatusOK
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		Convey("The tag is returned without its prefix", func() {
			latest, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "1.2.3")
		})

		Convey("An empty tag is rejected", func() {
			body = `{}`
			_, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldEqual, errEmptyTag)
		})

		Convey("A failing status is an error", func() {
			status = http.StatusForbidden
			_, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldNotBeNil)
		})
	})
}
