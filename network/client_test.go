package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer srv.Close()

		client := New(time.Second)

		Convey("The default agent is sent", func() {
			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "custom")
			So(req.Header.Get("User-Agent"), ShouldEqual, "custom")
		})
	})

	Convey("FromConfig reads the timeout in seconds", t, func() {
		viper.Set(key.NetworkTimeout, 7)
		So(FromConfig().Timeout, ShouldEqual, 7*time.Second)

		viper.Set(key.NetworkTimeout, 0)
		So(FromConfig().Timeout, ShouldEqual, time.Duration(0))
	})
}
