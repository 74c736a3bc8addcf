package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/createforge/internal/config"
	"github.com/alexisbeaulieu97/createforge/internal/logger"
	"github.com/alexisbeaulieu97/createforge/internal/plugin"
	"github.com/alexisbeaulieu97/createforge/internal/prompt"
	"github.com/alexisbeaulieu97/createforge/internal/template"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

const (
	testWorkDir     = "/work/app"
	testProfilePath = "/home/dev/.createforge/profile.yaml"
)

type installCall struct {
	dir      string
	packages []string
}

type fakeInstaller struct {
	calls []installCall
	fail  bool
}

func (f *fakeInstaller) Install(_ context.Context, dir string, packages []string) error {
	f.calls = append(f.calls, installCall{dir: dir, packages: packages})
	if f.fail {
		return forgeerrors.NewInstallError("npm", packages, "npm ERR! 404", errors.New("exit status 1"))
	}
	return nil
}

type fakeCloner struct {
	fs   afero.Fs
	urls []string
	err  error
}

func (f *fakeCloner) Clone(_ context.Context, url, dest string) error {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return f.err
	}
	if err := f.fs.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, filepath.Join(dest, "package.json"), []byte(`{"name":"cloned"}`), 0o644)
}

type fakeGit struct {
	dirs []string
}

func (f *fakeGit) Init(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return nil
}

// fakePrompter answers prompts from queues. When err is set every prompt
// returns it instead.
type fakePrompter struct {
	texts   []string
	selects []string
	multis  [][]string
	err     error
	asked   []string
}

func (f *fakePrompter) Text(req prompt.TextRequest) (string, error) {
	f.asked = append(f.asked, req.Message)
	if f.err != nil {
		return "", f.err
	}
	answer := f.texts[0]
	f.texts = f.texts[1:]
	return answer, nil
}

func (f *fakePrompter) Select(req prompt.SelectRequest) (string, error) {
	f.asked = append(f.asked, req.Message)
	if f.err != nil {
		return "", f.err
	}
	answer := f.selects[0]
	f.selects = f.selects[1:]
	return answer, nil
}

func (f *fakePrompter) MultiSelect(req prompt.MultiSelectRequest) ([]string, error) {
	f.asked = append(f.asked, req.Message)
	if f.err != nil {
		return nil, f.err
	}
	answer := f.multis[0]
	f.multis = f.multis[1:]
	return answer, nil
}

func (f *fakePrompter) Confirm(req prompt.ConfirmRequest) (bool, error) {
	f.asked = append(f.asked, req.Message)
	return req.Default, f.err
}

type testApp struct {
	*AppContext
	installer *fakeInstaller
	cloner    *fakeCloner
	git       *fakeGit
	prompter  *fakePrompter
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	registry, err := plugin.NewRegistry(plugin.Builtin())
	require.NoError(t, err)
	catalog, err := template.NewBuiltinCatalog()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testWorkDir, 0o755))

	settings := config.Defaults()
	settings.ProfilePath = testProfilePath

	ta := &testApp{
		installer: &fakeInstaller{},
		cloner:    &fakeCloner{fs: fs},
		git:       &fakeGit{},
		prompter:  &fakePrompter{},
	}
	ta.AppContext = &AppContext{
		Fs:         fs,
		WorkDir:    testWorkDir,
		ConfigPath: "/home/dev/.createforge/config.yaml",
		Settings:   &settings,
		Logger:     logger.Nop(),
		Installer:  ta.installer,
		Registry:   registry,
		Hooks:      plugin.BuiltinHooks(),
		Catalog:    catalog,
		Cloner:     ta.cloner,
		Git:        ta.git,
		Prompter:   ta.prompter,
		Now:        func() time.Time { return time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC) },
	}
	return ta
}

func executeCommand(app *AppContext, args ...string) (string, error) {
	root := newRootCmd(app)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}
