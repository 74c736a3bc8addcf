// Package installer sequences the steps of adding one plugin to a project.
package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/alexisbeaulieu97/createforge/internal/envfile"
	"github.com/alexisbeaulieu97/createforge/internal/logger"
	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/pkgmanager"
	"github.com/alexisbeaulieu97/createforge/internal/plugin"
	"github.com/alexisbeaulieu97/createforge/internal/scaffold"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

// Step identifiers, in execution order.
const (
	StepInstall  = "install"
	StepEnv      = "env"
	StepScaffold = "scaffold"
	StepSetup    = "setup"
)

// Config carries the collaborators of a Service.
type Config struct {
	Registry  *plugin.Registry
	Installer pkgmanager.Installer
	Fs        afero.Fs
	Hooks     plugin.Hooks
	// EnvFile is relative to the project root. Defaults to envfile.DefaultPath.
	EnvFile string
	Logger  *logger.Logger
}

// Service adds plugins to a project directory.
type Service struct {
	registry  *plugin.Registry
	installer pkgmanager.Installer
	fs        afero.Fs
	hooks     plugin.Hooks
	envFile   string
	logger    *logger.Logger
	now       func() time.Time
}

// NewService constructs a Service, filling in defaults for optional fields.
func NewService(cfg Config) *Service {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	envFile := cfg.EnvFile
	if envFile == "" {
		envFile = envfile.DefaultPath
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		registry:  cfg.Registry,
		installer: cfg.Installer,
		fs:        fs,
		hooks:     cfg.Hooks,
		envFile:   envFile,
		logger:    log,
		now:       time.Now,
	}
}

// EnvPath returns the environment file location for a project root.
func (s *Service) EnvPath(root string) string {
	if filepath.IsAbs(s.envFile) {
		return s.envFile
	}
	return filepath.Join(root, s.envFile)
}

// Report summarises a completed plugin addition.
type Report struct {
	Plugin plugin.Plugin
	Root   string
	Steps  []model.StepResult
	Env    envfile.Result
	Files  scaffold.Result
}

// Warnings returns the best-effort steps that failed.
func (r *Report) Warnings() []model.StepResult {
	return model.Warnings(r.Steps)
}

// Step returns the result recorded for id.
func (r *Report) Step(id string) (model.StepResult, bool) {
	for _, step := range r.Steps {
		if step.StepID == id {
			return step, true
		}
	}
	return model.StepResult{}, false
}

// Add installs plugin id into the project at root.
//
// An unknown id yields a NotFoundError and a package manager failure an
// InstallError; both are returned before anything is written under root.
// Once packages are installed the remaining steps are best-effort: their
// failures are recorded as warnings on the report and Add returns no error.
func (s *Service) Add(ctx context.Context, root, id string) (*Report, error) {
	p, ok := s.registry.Lookup(id)
	if !ok {
		s.logger.WithFields(map[string]any{"plugin": id}).Debug("plugin not found")
		return nil, forgeerrors.NewNotFoundError("plugin", id, s.registry.IDs())
	}

	log := s.logger.WithFields(map[string]any{"plugin": p.ID, "root": root})
	report := &Report{Plugin: p, Root: root}

	started := s.now()
	log.WithFields(map[string]any{"packages": p.Packages}).Debug("installing packages")
	if err := s.installer.Install(ctx, root, p.Packages); err != nil {
		log.Error(err, "package installation failed")
		return nil, err
	}
	report.Steps = append(report.Steps, s.result(StepInstall, started, model.StatusSuccess,
		fmt.Sprintf("installed %d package(s)", len(p.Packages)), nil))

	report.Steps = append(report.Steps, s.mergeEnv(log, root, p, report))
	report.Steps = append(report.Steps, s.scaffold(log, root, p, report))
	report.Steps = append(report.Steps, s.setup(ctx, log, root, p))

	return report, nil
}

func (s *Service) mergeEnv(log *logger.Logger, root string, p plugin.Plugin, report *Report) model.StepResult {
	started := s.now()
	if len(p.EnvVars) == 0 {
		return s.result(StepEnv, started, model.StatusSkipped, "no environment variables declared", nil)
	}

	path := s.EnvPath(root)
	res, err := envfile.Merge(s.fs, path, p.EnvVars)
	report.Env = res
	if err != nil {
		log.Warn(fmt.Sprintf("could not update %s: %v", s.envFile, err))
		return s.result(StepEnv, started, model.StatusWarning, "could not update environment file", err)
	}

	log.WithFields(map[string]any{"appended": res.Appended}).Debug("environment file merged")
	msg := fmt.Sprintf("added %d variable(s) to %s", len(res.Appended), s.envFile)
	if !res.Changed() {
		msg = "all variables already present in " + s.envFile
	}
	return s.result(StepEnv, started, model.StatusSuccess, msg, nil)
}

func (s *Service) scaffold(log *logger.Logger, root string, p plugin.Plugin, report *Report) model.StepResult {
	started := s.now()
	if len(p.Files) == 0 {
		return s.result(StepScaffold, started, model.StatusSkipped, "no files declared", nil)
	}

	res, err := scaffold.Scaffold(s.fs, root, p.Files)
	report.Files = res
	if err != nil {
		log.Warn(fmt.Sprintf("file scaffolding stopped: %v", err))
		return s.result(StepScaffold, started, model.StatusWarning, "could not create all files", err)
	}

	log.WithFields(map[string]any{"written": res.Written, "skipped": res.Skipped}).Debug("files scaffolded")
	return s.result(StepScaffold, started, model.StatusSuccess,
		fmt.Sprintf("wrote %d file(s), kept %d existing", len(res.Written), len(res.Skipped)), nil)
}

func (s *Service) setup(ctx context.Context, log *logger.Logger, root string, p plugin.Plugin) model.StepResult {
	started := s.now()
	hook, ok := s.hooks.For(p.ID)
	if !ok {
		return s.result(StepSetup, started, model.StatusSkipped, "no setup hook", nil)
	}

	if err := hook(ctx, s.fs, root); err != nil {
		log.Warn(fmt.Sprintf("custom setup failed: %v", err))
		return s.result(StepSetup, started, model.StatusWarning, "custom setup failed", err)
	}
	return s.result(StepSetup, started, model.StatusSuccess, "custom setup complete", nil)
}

func (s *Service) result(id string, started time.Time, status, msg string, err error) model.StepResult {
	return model.StepResult{
		StepID:    id,
		Status:    status,
		Message:   msg,
		Error:     err,
		Duration:  s.now().Sub(started),
		Timestamp: started,
	}
}
