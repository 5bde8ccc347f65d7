// Package network provides the HTTP client used to retrieve stream manifests.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

// Options tune the client returned by New.
type Options struct {
	// Timeout bounds the whole request. Zero disables it.
	Timeout time.Duration
	// Fingerprint routes HTTPS traffic through a Chrome TLS fingerprint.
	Fingerprint bool
}

// FromConfig reads client options from the network.* configuration keys.
func FromConfig() Options {
	return Options{
		Timeout:     time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Fingerprint: viper.GetBool(key.NetworkTLSFingerprint),
	}
}

// New builds an HTTP client for the given options.
func New(options Options) *http.Client {
	var transport http.RoundTripper = newTransport()
	if options.Fingerprint {
		transport = newFingerprintTransport()
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
