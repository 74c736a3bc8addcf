// Package config loads user settings from ~/.createforge/config.yaml and FORGE_* variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

const (
	dirName  = ".createforge"
	fileName = "config"
	fileType = "yaml"

	// EnvPrefix is prepended to every setting read from the environment.
	EnvPrefix = "FORGE"
)

// Settings holds the tunables shared by every command.
type Settings struct {
	PackageManager  string `mapstructure:"package_manager" validate:"oneof=npm pnpm yarn bun"`
	EnvFile         string `mapstructure:"env_file" validate:"required,env_file"`
	LogLevel        string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	TemplateBaseURL string `mapstructure:"template_base_url" validate:"required,url"`
	ProfilePath     string `mapstructure:"profile_path" validate:"required"`
}

// Dir returns the settings directory (~/.createforge).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// FilePath returns the settings file location (~/.createforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		PackageManager:  "npm",
		EnvFile:         ".env.local",
		LogLevel:        "warn",
		TemplateBaseURL: "https://github.com",
		ProfilePath:     filepath.Join(Dir(), "profile.yaml"),
	}
}

// Load reads settings from path on fs, layering FORGE_* environment variables on
// top. A missing file is not an error; a malformed one is a ParseError.
func Load(fs afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("package_manager", defaults.PackageManager)
	v.SetDefault("env_file", defaults.EnvFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("template_base_url", defaults.TemplateBaseURL)
	v.SetDefault("profile_path", defaults.ProfilePath)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, forgeerrors.NewParseError(path, 0, err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return nil, forgeerrors.NewParseError(path, 0, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, forgeerrors.NewParseError(path, 0, fmt.Errorf("decode settings: %w", err))
	}
	s.LogLevel = strings.ToLower(s.LogLevel)

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
