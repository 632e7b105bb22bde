// Package network builds the HTTP client manifests are fetched with.
package network

import (
	"net/http"
	"time"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/key"
	"github.com/spf13/viper"
)

// New returns a client with a tuned transport that identifies itself with
// constant.UserAgent. A zero timeout means none.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &Transport{Base: newTransport(), UserAgent: constant.UserAgent},
	}
}

// FromConfig is New with the timeout taken from network.timeout (seconds).
func FromConfig() *http.Client {
	return New(time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second)
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// Transport sets the User-Agent on requests that do not carry one.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.UserAgent == "" || req.Header.Get("User-Agent") != "" {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.UserAgent)
	return base.RoundTrip(r)
}
