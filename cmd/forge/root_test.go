package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/createforge/internal/pkgmanager"
)

func TestRootPrepareLoadsSettingsFile(t *testing.T) {
	app := newTestApp(t)
	app.Settings = nil
	app.Logger = nil
	app.Installer = nil
	require.NoError(t, afero.WriteFile(app.Fs, app.ConfigPath, []byte("package_manager: pnpm\nenv_file: .env\n"), 0o644))

	_, err := executeCommand(app.AppContext, "version")
	require.NoError(t, err)

	require.Equal(t, "pnpm", app.Settings.PackageManager)
	require.Equal(t, ".env", app.Settings.EnvFile)
	require.NotNil(t, app.Logger)
	runner, ok := app.Installer.(*pkgmanager.Runner)
	require.True(t, ok)
	require.Equal(t, pkgmanager.PNPM, runner.Manager)
}

func TestRootPrepareRejectsInvalidSettings(t *testing.T) {
	app := newTestApp(t)
	app.Settings = nil
	require.NoError(t, afero.WriteFile(app.Fs, app.ConfigPath, []byte("package_manager: pip\n"), 0o644))

	_, err := executeCommand(app.AppContext, "version")
	require.ErrorContains(t, err, "load settings")
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd(newTestApp(t).AppContext)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"add", "plugins", "templates", "create", "profile", "health", "version"} {
		require.Contains(t, names, want)
	}
}
