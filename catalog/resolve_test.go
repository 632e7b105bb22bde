package catalog

import (
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveURL(t *testing.T) {
	Convey("Given a base URL", t, func() {
		base, err := url.Parse("https://example.com/media/")
		So(err, ShouldBeNil)

		Convey("Relative locators resolve against it", func() {
			got, err := ResolveURL("clip.mp4", base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://example.com/media/clip.mp4")

			got, err = ResolveURL("480x270/clip.jpg", base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://example.com/media/480x270/clip.jpg")
		})

		Convey("Root-relative locators replace the path", func() {
			got, err := ResolveURL("/other/clip.mp4", base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://example.com/other/clip.mp4")
		})

		Convey("Absolute http and https locators win", func() {
			got, err := ResolveURL("https://cdn.other.com/clip.mp4", base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://cdn.other.com/clip.mp4")

			got, err = ResolveURL("http://cdn.other.com/clip.mp4", base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "http://cdn.other.com/clip.mp4")
		})

		Convey("A base without trailing slash drops its last segment", func() {
			noSlash, _ := url.Parse("https://example.com/media")
			got, err := ResolveURL("clip.mp4", noSlash)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://example.com/clip.mp4")
		})

		Convey("Unparsable locators are errors", func() {
			_, err := ResolveURL("clip\x7f.mp4", base)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Optional locators", t, func() {
		base, _ := url.Parse("https://example.com/")

		Convey("A missing locator yields no URL and no error", func() {
			got, err := resolveOptional(nil, base)
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("A present locator is resolved", func() {
			ref := "a.vtt"
			got, err := resolveOptional(&ref, base)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "https://example.com/a.vtt")
		})
	})
}
