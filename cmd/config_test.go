package cmd

import (
	"testing"

	"github.com/castlist-cli/castlist/config"
	"github.com/castlist-cli/castlist/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Values take the type of the default", t, func() {
		v, err := parseValue(config.Default[key.NetworkTimeout], []string{"15"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 15)

		v, err = parseValue(config.Default[key.CatalogStrict], []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(config.Default[key.ManifestFormat], []string{"hls", "ignored"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "hls")
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parseValue(config.Default[key.NetworkTimeout], []string{"soon"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.NetworkTimeout)

		_, err = parseValue(config.Default[key.CatalogStrict], []string{"maybe"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.ManifestURL], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Unknown keys suggest the closest known one", t, func() {
		err := errUnknownKey("manifest.urll")
		So(err.Error(), ShouldContainSubstring, "manifest.urll")
		So(err.Error(), ShouldContainSubstring, key.ManifestURL)
	})
}

func TestManifestURL(t *testing.T) {
	Convey("The url argument wins over the configured one", t, func() {
		So(manifestURL([]string{"https://example.com/f.json"}), ShouldEqual, "https://example.com/f.json")
	})
}
