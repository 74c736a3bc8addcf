package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/createforge/internal/config"
	"github.com/alexisbeaulieu97/createforge/internal/logger"
	"github.com/alexisbeaulieu97/createforge/internal/pkgmanager"
	"github.com/alexisbeaulieu97/createforge/internal/plugin"
	"github.com/alexisbeaulieu97/createforge/internal/profile"
	"github.com/alexisbeaulieu97/createforge/internal/project"
	"github.com/alexisbeaulieu97/createforge/internal/prompt"
	"github.com/alexisbeaulieu97/createforge/internal/template"
)

// AppContext bundles long-lived services created at startup. Tests replace
// individual fields before executing the root command.
type AppContext struct {
	Fs         afero.Fs
	WorkDir    string
	ConfigPath string

	// Settings, Logger and Installer are resolved from the settings file on
	// first use when left nil.
	Settings  *config.Settings
	Logger    *logger.Logger
	Installer pkgmanager.Installer

	Registry *plugin.Registry
	Hooks    plugin.Hooks
	Catalog  *template.Catalog

	Cloner project.Cloner
	Git    project.Initializer

	Prompter    prompt.Prompter
	Interactive bool

	Now func() time.Time
}

func newAppContext() (*AppContext, error) {
	registry, err := plugin.NewRegistry(plugin.Builtin())
	if err != nil {
		return nil, fmt.Errorf("load plugin catalog: %w", err)
	}
	catalog, err := template.NewBuiltinCatalog()
	if err != nil {
		return nil, fmt.Errorf("load template catalog: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &AppContext{
		Fs:          afero.NewOsFs(),
		WorkDir:     wd,
		ConfigPath:  config.FilePath(),
		Registry:    registry,
		Hooks:       plugin.BuiltinHooks(),
		Catalog:     catalog,
		Cloner:      project.NewGitCloner(),
		Git:         project.GitInitializer{},
		Prompter:    prompt.NewTeaPrompter(),
		Interactive: prompt.Interactive(os.Stdin) && prompt.Interactive(os.Stdout),
		Now:         time.Now,
	}, nil
}

// prepare resolves settings, the logger and the package manager. Verbose
// lowers the log level to debug.
func (a *AppContext) prepare(cmd *cobra.Command, verbose bool) error {
	if a.Settings == nil {
		settings, err := config.Load(a.Fs, a.ConfigPath)
		if err != nil {
			return newCommandError("load settings", a.ConfigPath, err, "Fix or remove the settings file and try again.")
		}
		a.Settings = settings
	}

	if a.Logger == nil {
		level := a.Settings.LogLevel
		if verbose {
			level = "debug"
		}
		log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
		if err != nil {
			return newCommandError("create logger", "log level "+level, err, "Set log_level to one of trace, debug, info, warn, error or disabled.")
		}
		a.Logger = log
	}

	if a.Installer == nil {
		a.Installer = pkgmanager.NewRunner(a.Settings.PackageManager)
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	return nil
}

// ProfileStore opens the profile file named by the settings.
func (a *AppContext) ProfileStore() *profile.Store {
	return profile.NewStore(a.Fs, a.Settings.ProfilePath, a.Now)
}
