// Package config owns the viper setup: defaults, environment bindings and the TOML file.
package config

import (
	"errors"
	"strings"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/filesystem"
	"github.com/castlist-cli/castlist/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads castlist.toml if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
