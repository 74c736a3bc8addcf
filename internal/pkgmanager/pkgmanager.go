// Package pkgmanager shells out to the host JavaScript package manager.
package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"

	"github.com/alexisbeaulieu97/createforge/internal/internalexec"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

// Installer installs packages into a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, packages []string) error
}

// Supported package managers.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
)

// Managers lists the supported package manager executables.
func Managers() []string {
	return []string{NPM, PNPM, Yarn, Bun}
}

// Runner invokes a package manager executable found on PATH.
type Runner struct {
	Manager string
	// Stdout and Stderr receive a copy of the process output when set.
	// The output is always captured for error reporting.
	Stdout io.Writer
	Stderr io.Writer
}

var _ Installer = (*Runner)(nil)

// NewRunner returns a Runner for the given manager, defaulting to npm.
func NewRunner(manager string) *Runner {
	if manager == "" {
		manager = NPM
	}
	return &Runner{Manager: manager}
}

// Args builds the argument list for installing packages. With no packages it
// installs the dependencies already declared by the project.
func (r *Runner) Args(packages []string) []string {
	verb := "add"
	if r.Manager == NPM || len(packages) == 0 {
		verb = "install"
	}
	return append([]string{verb}, packages...)
}

// Install runs a single package manager invocation for all packages. Any failure,
// whether the executable is missing or exits non-zero, is reported as one
// InstallError without per-package attribution.
func (r *Runner) Install(ctx context.Context, dir string, packages []string) error {
	if !slices.Contains(Managers(), r.Manager) {
		return forgeerrors.NewInstallError(r.Manager, packages, "", fmt.Errorf("unsupported package manager"))
	}

	bin, err := exec.LookPath(r.Manager)
	if err != nil {
		return forgeerrors.NewInstallError(r.Manager, packages, "", err)
	}

	cmd := exec.CommandContext(ctx, bin, r.Args(packages)...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	res, err := internalexec.Run(cmd)
	if err != nil {
		return forgeerrors.NewInstallError(r.Manager, packages, internalexec.PrimaryOutput(res), err)
	}
	return nil
}
