package config

import (
	"encoding/json"
	"testing"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/filesystem"
	"github.com/castlist-cli/castlist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Defaults are populated", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ManifestURL), ShouldEqual, constant.DefaultManifestURL)
			So(viper.GetString(key.ManifestFormat), ShouldEqual, "mp4")
			So(viper.GetBool(key.CatalogStrict), ShouldBeFalse)
		})

		Convey("Environment overrides defaults", func() {
			t.Setenv("CASTLIST_CATALOG_STRICT", "true")
			So(viper.GetBool(key.CatalogStrict), ShouldBeTrue)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a field", t, func() {
		f := Default[key.NetworkTimeout]

		Convey("Env uses the app prefix", func() {
			So(f.Env(), ShouldEqual, "CASTLIST_NETWORK_TIMEOUT")
		})

		Convey("JSON carries the type and default", func() {
			data, err := json.Marshal(&f)
			So(err, ShouldBeNil)

			var out map[string]any
			So(json.Unmarshal(data, &out), ShouldBeNil)
			So(out["type"], ShouldEqual, "int")
			So(out["default"], ShouldEqual, float64(60))
			So(out["key"], ShouldEqual, key.NetworkTimeout)
		})

		Convey("Pretty mentions the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.NetworkTimeout)
		})
	})

	Convey("EnvKeyReplacer converts dots to underscores", t, func() {
		So(EnvKeyReplacer.Replace("tree.show_urls"), ShouldEqual, "tree_show_urls")
	})
}
