// Package config wires defaults, environment variables and an optional TOML
// file into viper.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// App is the application name used for the config file, config directory and env prefix.
const App = "color-mcp"

// EnvPrefix is prepended to every environment variable, e.g. COLOR_MCP_LOG_LEVEL.
const EnvPrefix = "COLOR_MCP"

// EnvConfigPath overrides the directory searched for color-mcp.toml.
const EnvConfigPath = EnvPrefix + "_CONFIG_PATH"

// EnvKeyReplacer maps dotted config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

var fs afero.Fs = afero.NewOsFs()

// SetFs replaces the filesystem viper reads config files from.
func SetFs(f afero.Fs) {
	fs = f
}

// Dir returns the directory searched for color-mcp.toml when no explicit file is given.
func Dir() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return custom
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, App)
}

// Setup registers defaults and env bindings, then reads the config file.
//
// When file is empty, color-mcp.toml is looked up in Dir() and a missing file
// is not an error. An explicit file must exist.
func Setup(file string) error {
	viper.SetFs(fs)
	viper.SetConfigType("toml")
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName(App)
		viper.AddConfigPath(Dir())
	}

	viper.SetEnvPrefix(EnvPrefix)
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
