// Package where resolves the directories and files castlist keeps on disk.
package where

import (
	"os"
	"path/filepath"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "CASTLIST_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring EnvConfigPath first
// and the platform user config directory otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache returns the cache directory. Falls back to ./cache when the
// platform does not report one.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// ConfigFile returns the path of the TOML configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Recent returns the file holding remembered manifest URLs.
func Recent() string {
	return filepath.Join(Cache(), "recent.json")
}
