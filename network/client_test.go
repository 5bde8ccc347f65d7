package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

func TestNew(t *testing.T) {
	Convey("Given client options", t, func() {
		Convey("The plain transport is used by default", func() {
			client := New(Options{Timeout: time.Second})
			So(client.Timeout, ShouldEqual, time.Second)
			_, ok := client.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
		})

		Convey("Fingerprinting swaps the transport", func() {
			client := New(Options{Fingerprint: true})
			_, ok := client.Transport.(*fingerprintTransport)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given network configuration", t, func() {
		viper.Set(key.NetworkTimeout, 5)
		viper.Set(key.NetworkTLSFingerprint, true)
		defer func() {
			viper.Set(key.NetworkTimeout, 60)
			viper.Set(key.NetworkTLSFingerprint, false)
		}()

		options := FromConfig()
		So(options.Timeout, ShouldEqual, 5*time.Second)
		So(options.Fingerprint, ShouldBeTrue)
	})
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Given a plain HTTP server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"video":[]}`)
		}))
		defer server.Close()

		Convey("Non-TLS requests bypass the fingerprint dialer", func() {
			client := New(Options{Fingerprint: true, Timeout: 5 * time.Second})
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"video":[]}`)
		})
	})
}
