// Package project creates a new project directory from a template.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/afero"

	"github.com/alexisbeaulieu97/createforge/internal/logger"
	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/pkgmanager"
	"github.com/alexisbeaulieu97/createforge/internal/template"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

// Step identifiers, in execution order.
const (
	StepClone   = "clone"
	StepInstall = "install"
	StepGit     = "git"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks a project name: lowercase letters, digits and hyphens.
func ValidateName(name string) error {
	if name == "" {
		return forgeerrors.NewValidationError("name", "project name is required", nil)
	}
	if !namePattern.MatchString(name) {
		return forgeerrors.NewValidationError("name", "use lowercase letters, numbers, and hyphens only", nil)
	}
	return nil
}

// Request describes one project to create.
type Request struct {
	Name     string
	Dir      string
	Template template.Template
	Install  bool
	InitGit  bool
}

// Outcome reports what Create did.
type Outcome struct {
	Path         string
	Template     template.Template
	Steps        []model.StepResult
	UsedFallback bool
	Elapsed      time.Duration
}

// Warnings returns the steps that failed without aborting creation.
func (o *Outcome) Warnings() []model.StepResult {
	return model.Warnings(o.Steps)
}

// Creator clones a template, installs its dependencies and initialises git.
type Creator struct {
	Fs        afero.Fs
	Cloner    Cloner
	Installer pkgmanager.Installer
	Git       Initializer
	Logger    *logger.Logger
	BaseURL   string
	// OnStep, when set, receives a running result before each step and the
	// final result after it.
	OnStep func(model.StepResult)
	Now    func() time.Time
}

func (c *Creator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Creator) emit(r model.StepResult) {
	if c.OnStep != nil {
		c.OnStep(r)
	}
}

// Create builds the project described by req. Invalid names and occupied
// destinations fail before anything is written. A failed clone falls back to a
// minimal skeleton; install and git failures are recorded as warnings.
func (c *Creator) Create(ctx context.Context, req Request) (*Outcome, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	dest := filepath.Join(req.Dir, req.Name)
	if err := c.checkDestination(dest); err != nil {
		return nil, err
	}

	log := c.Logger.WithFields(map[string]any{"project": req.Name, "template": req.Template.ID})
	started := c.now()
	out := &Outcome{Path: dest, Template: req.Template}

	clone, err := c.clone(ctx, log, dest, req)
	if err != nil {
		return nil, err
	}
	out.UsedFallback = clone.Warned()
	out.Steps = append(out.Steps, clone)

	out.Steps = append(out.Steps, c.run(StepInstall, req.Install, "dependency installation disabled", func() (string, error) {
		if err := c.Installer.Install(ctx, dest, nil); err != nil {
			log.Warn(fmt.Sprintf("dependency installation failed: %v", err))
			return "", err
		}
		return "dependencies installed", nil
	}))

	out.Steps = append(out.Steps, c.run(StepGit, req.InitGit, "git initialisation disabled", func() (string, error) {
		if err := c.Git.Init(ctx, dest); err != nil {
			log.Warn(fmt.Sprintf("git initialisation failed: %v", err))
			return "", err
		}
		return "git repository initialised", nil
	}))

	out.Elapsed = c.now().Sub(started)
	return out, nil
}

func (c *Creator) checkDestination(dest string) error {
	exists, err := afero.Exists(c.Fs, dest)
	if err != nil {
		return fmt.Errorf("check %s: %w", dest, err)
	}
	if !exists {
		return nil
	}
	empty, err := afero.IsEmpty(c.Fs, dest)
	if err != nil {
		return fmt.Errorf("check %s: %w", dest, err)
	}
	if !empty {
		return forgeerrors.NewValidationError("name", fmt.Sprintf("directory %s already exists and is not empty", dest), nil)
	}
	return nil
}

func (c *Creator) clone(ctx context.Context, log *logger.Logger, dest string, req Request) (model.StepResult, error) {
	started := c.now()
	c.emit(model.StepResult{StepID: StepClone, Status: model.StatusRunning, Timestamp: started})

	url := req.Template.CloneURL(c.BaseURL)
	log.WithFields(map[string]any{"url": url}).Debug("cloning template")

	cloneErr := c.Cloner.Clone(ctx, url, dest)
	if cloneErr == nil {
		return c.finish(StepClone, started, model.StatusSuccess, "cloned "+req.Template.Name, nil), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.StepResult{}, ctxErr
	}

	log.Warn(fmt.Sprintf("could not clone template, using local fallback: %v", cloneErr))
	if err := c.Fs.RemoveAll(dest); err != nil {
		return model.StepResult{}, fmt.Errorf("clean up failed clone: %w", err)
	}
	if err := WriteFallback(c.Fs, dest, req.Name, req.Template.ID); err != nil {
		return model.StepResult{}, err
	}
	return c.finish(StepClone, started, model.StatusWarning, "could not clone template, created minimal project instead", cloneErr), nil
}

func (c *Creator) run(id string, enabled bool, skipped string, fn func() (string, error)) model.StepResult {
	started := c.now()
	if !enabled {
		return c.finish(id, started, model.StatusSkipped, skipped, nil)
	}

	c.emit(model.StepResult{StepID: id, Status: model.StatusRunning, Timestamp: started})
	msg, err := fn()
	if err != nil {
		return c.finish(id, started, model.StatusWarning, id+" step failed", err)
	}
	return c.finish(id, started, model.StatusSuccess, msg, nil)
}

func (c *Creator) finish(id string, started time.Time, status, msg string, err error) model.StepResult {
	r := model.StepResult{
		StepID:    id,
		Status:    status,
		Message:   msg,
		Error:     err,
		Duration:  c.now().Sub(started),
		Timestamp: started,
	}
	c.emit(r)
	return r
}
