package where

import (
	"path/filepath"
	"testing"

	"github.com/castlist-cli/castlist/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directories are created on demand", t, func() {
		for _, target := range []struct {
			name string
			fn   func() string
		}{
			{"Config", Config},
			{"Cache", Cache},
			{"Logs", Logs},
		} {
			Convey(target.name, func() {
				path := target.fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})

	Convey("Files live inside their directories", t, func() {
		So(filepath.Dir(ConfigFile()), ShouldEqual, Config())
		So(filepath.Base(ConfigFile()), ShouldEqual, "castlist.toml")
		So(filepath.Dir(Recent()), ShouldEqual, Cache())
	})

	Convey("EnvConfigPath overrides the config directory", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/castlist-test-config")
		So(Config(), ShouldEqual, "/tmp/castlist-test-config")
	})
}
