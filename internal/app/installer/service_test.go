package installer

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/plugin"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

type fakeInstaller struct {
	calls    [][]string
	dirs     []string
	err      error
	onInvoke func()
}

func (f *fakeInstaller) Install(_ context.Context, dir string, packages []string) error {
	f.calls = append(f.calls, packages)
	f.dirs = append(f.dirs, dir)
	if f.onInvoke != nil {
		f.onInvoke()
	}
	return f.err
}

func builtinRegistry(t *testing.T) *plugin.Registry {
	t.Helper()
	reg, err := plugin.NewRegistry(plugin.Builtin())
	require.NoError(t, err)
	return reg
}

func countFiles(t *testing.T, fs afero.Fs) int {
	t.Helper()
	n := 0
	err := afero.Walk(fs, "/", func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestAddUnknownPluginWritesNothing(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	inst := &fakeInstaller{}
	svc := NewService(Config{Registry: builtinRegistry(t), Installer: inst, Fs: fs})

	report, err := svc.Add(context.Background(), "/app", "unknown-xyz")
	require.Nil(t, report)

	var notFound *forgeerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "unknown-xyz", notFound.ID)
	require.Contains(t, notFound.Known, "stripe")
	require.Contains(t, err.Error(), "unknown-xyz")

	require.Empty(t, inst.calls)
	require.Zero(t, countFiles(t, fs))
}

func TestAddStripeCreatesEnvFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	inst := &fakeInstaller{}
	svc := NewService(Config{Registry: builtinRegistry(t), Installer: inst, Fs: fs})

	report, err := svc.Add(context.Background(), "/app", "stripe")
	require.NoError(t, err)
	require.Empty(t, report.Warnings())

	require.Equal(t, [][]string{{"stripe", "@stripe/stripe-js"}}, inst.calls)
	require.Equal(t, []string{"/app"}, inst.dirs)

	data, err := afero.ReadFile(fs, "/app/.env.local")
	require.NoError(t, err)
	require.Equal(t, "\nSTRIPE_SECRET_KEY=# Your Stripe secret key\n"+
		"NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY=# Your Stripe publishable key\n", string(data))

	require.Equal(t, []string{"STRIPE_SECRET_KEY", "NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY"}, report.Env.Appended)

	step, ok := report.Step(StepScaffold)
	require.True(t, ok)
	require.Equal(t, model.StatusSkipped, step.Status)
}

func TestAddWithoutEnvVarsLeavesEnvFileUntouched(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	original := "EXISTING=1\r\n# trailing comment without newline"
	require.NoError(t, afero.WriteFile(fs, "/app/.env.local", []byte(original), 0o600))

	svc := NewService(Config{Registry: builtinRegistry(t), Installer: &fakeInstaller{}, Fs: fs})
	report, err := svc.Add(context.Background(), "/app", "zustand")
	require.NoError(t, err)

	step, ok := report.Step(StepEnv)
	require.True(t, ok)
	require.Equal(t, model.StatusSkipped, step.Status)

	data, err := afero.ReadFile(fs, "/app/.env.local")
	require.NoError(t, err)
	require.Equal(t, original, string(data))
}

func TestAddTwiceAppendsEachKeyOnce(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	svc := NewService(Config{Registry: builtinRegistry(t), Installer: &fakeInstaller{}, Fs: fs})

	_, err := svc.Add(context.Background(), "/app", "stripe")
	require.NoError(t, err)
	first, err := afero.ReadFile(fs, "/app/.env.local")
	require.NoError(t, err)

	report, err := svc.Add(context.Background(), "/app", "stripe")
	require.NoError(t, err)
	require.False(t, report.Env.Changed())

	second, err := afero.ReadFile(fs, "/app/.env.local")
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestAddInstallFailureIsFatalAndPrecedesWrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	filesAtInstall := -1
	inst := &fakeInstaller{
		err: forgeerrors.NewInstallError("npm", []string{"stripe"}, "E404", errors.New("exit status 1")),
	}
	inst.onInvoke = func() { filesAtInstall = countFiles(t, fs) }

	svc := NewService(Config{Registry: builtinRegistry(t), Installer: inst, Fs: fs})
	report, err := svc.Add(context.Background(), "/app", "stripe")
	require.Nil(t, report)

	var installErr *forgeerrors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Len(t, inst.calls, 1)
	require.Zero(t, filesAtInstall)

	exists, err := afero.Exists(fs, "/app/.env.local")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAddDowngradesLaterFailuresToWarnings(t *testing.T) {
	t.Parallel()

	reg, err := plugin.NewRegistry([]plugin.Plugin{{
		ID:          "widget",
		Name:        "Widget",
		Description: "Test plugin",
		Category:    plugin.CategoryUI,
		Packages:    []string{"widget"},
		EnvVars:     []plugin.EnvVar{{Key: "WIDGET_KEY", Description: "Widget key"}},
		Files:       []plugin.File{{Path: "lib/widget.ts", Content: "export {}\n"}},
	}})
	require.NoError(t, err)

	hookCalls := 0
	hooks := plugin.Hooks{"widget": func(context.Context, afero.Fs, string) error {
		hookCalls++
		return errors.New("hook exploded")
	}}

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	svc := NewService(Config{Registry: reg, Installer: &fakeInstaller{}, Fs: fs, Hooks: hooks})

	report, err := svc.Add(context.Background(), "/app", "widget")
	require.NoError(t, err)
	require.Equal(t, 1, hookCalls)

	warned := report.Warnings()
	require.Len(t, warned, 3)
	require.Equal(t, StepEnv, warned[0].StepID)
	require.Equal(t, StepScaffold, warned[1].StepID)
	require.Equal(t, StepSetup, warned[2].StepID)
	require.ErrorContains(t, warned[2].Error, "hook exploded")

	install, ok := report.Step(StepInstall)
	require.True(t, ok)
	require.Equal(t, model.StatusSuccess, install.Status)
}

func TestAddRunsBuiltinSetupHook(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	svc := NewService(Config{
		Registry:  builtinRegistry(t),
		Installer: &fakeInstaller{},
		Fs:        fs,
		Hooks:     plugin.BuiltinHooks(),
	})

	report, err := svc.Add(context.Background(), "/app", "shadcn")
	require.NoError(t, err)

	step, ok := report.Step(StepSetup)
	require.True(t, ok)
	require.Equal(t, model.StatusSuccess, step.Status)

	exists, err := afero.Exists(fs, "/app/components.json")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestAddScaffoldsDeclaredFilesWithoutClobbering(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app/playwright.config.ts", []byte("// mine"), 0o644))

	svc := NewService(Config{Registry: builtinRegistry(t), Installer: &fakeInstaller{}, Fs: fs})
	report, err := svc.Add(context.Background(), "/app", "playwright")
	require.NoError(t, err)
	require.Equal(t, []string{"playwright.config.ts"}, report.Files.Skipped)

	data, err := afero.ReadFile(fs, "/app/playwright.config.ts")
	require.NoError(t, err)
	require.Equal(t, "// mine", string(data))
}

func TestEnvPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		envFile string
		want    string
	}{
		{"default", "", "/app/.env.local"},
		{"relative override", ".env", "/app/.env"},
		{"absolute override", "/etc/forge.env", "/etc/forge.env"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(Config{EnvFile: tt.envFile})
			require.Equal(t, tt.want, svc.EnvPath("/app"))
		})
	}
}
