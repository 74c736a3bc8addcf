// Package health runs local checks against a generated project.
package health

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/alexisbeaulieu97/createforge/internal/envfile"
)

// Status is the outcome of one check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is a single health finding.
type Check struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Report aggregates checks. Score counts passing checks.
type Report struct {
	Checks []Check
	Score  int
	Total  int
}

// Perfect reports whether every check passed.
func (r Report) Perfect() bool {
	return r.Total > 0 && r.Score == r.Total
}

// Fixable returns checks that carry a suggested fix.
func (r Report) Fixable() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Fix != "" {
			out = append(out, c)
		}
	}
	return out
}

// Options tunes the checks.
type Options struct {
	// EnvFile is relative to the project root. Defaults to envfile.DefaultPath.
	EnvFile string
	// Minimums maps dependency names to the lowest recommended version.
	Minimums map[string]string
}

// DefaultMinimums are the framework versions the built-in templates target.
func DefaultMinimums() map[string]string {
	return map[string]string{
		"next":  "14.0.0",
		"react": "18.0.0",
	}
}

// Run executes every check against the project at root.
func Run(afs afero.Fs, root string, opts Options) Report {
	if opts.EnvFile == "" {
		opts.EnvFile = envfile.DefaultPath
	}
	if opts.Minimums == nil {
		opts.Minimums = DefaultMinimums()
	}

	pkg, pkgErr := readPackageJSON(afs, root)

	checks := []Check{
		checkTypeScript(afs, root),
		checkTests(pkg, pkgErr),
		checkEnvironment(afs, root, opts.EnvFile),
		checkFramework(pkg, pkgErr, opts.Minimums),
	}

	report := Report{Checks: checks, Total: len(checks)}
	for _, c := range checks {
		if c.Status == StatusPass {
			report.Score++
		}
	}
	return report
}

var errNoPackageJSON = errors.New("no package.json found")

func readPackageJSON(afs afero.Fs, root string) ([]byte, error) {
	data, err := afero.ReadFile(afs, filepath.Join(root, "package.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errNoPackageJSON
		}
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("package.json is not valid JSON")
	}
	return data, nil
}

func checkTypeScript(afs afero.Fs, root string) Check {
	c := Check{Name: "TypeScript"}
	exists, err := afero.Exists(afs, filepath.Join(root, "tsconfig.json"))
	switch {
	case err != nil:
		c.Status, c.Message = StatusWarn, "Could not check for tsconfig.json"
	case exists:
		c.Status, c.Message = StatusPass, "TypeScript configured"
	default:
		c.Status, c.Message, c.Fix = StatusWarn, "No tsconfig.json found", "npx tsc --init"
	}
	return c
}

func checkTests(pkg []byte, pkgErr error) Check {
	c := Check{Name: "Tests"}
	switch {
	case pkgErr != nil:
		c.Status, c.Message = StatusWarn, "Could not check test configuration"
	case gjson.GetBytes(pkg, "scripts.test").String() != "":
		c.Status, c.Message = StatusPass, "Test script configured"
	default:
		c.Status, c.Message = StatusWarn, "No test script found"
	}
	return c
}

func checkEnvironment(afs afero.Fs, root, name string) Check {
	c := Check{Name: "Environment"}
	path := filepath.Join(root, name)

	exists, err := afero.Exists(afs, path)
	if err != nil || !exists {
		c.Status, c.Message = StatusWarn, fmt.Sprintf("No %s file found", name)
		return c
	}

	content, err := envfile.Read(afs, path)
	if err != nil {
		c.Status, c.Message = StatusWarn, fmt.Sprintf("Could not read %s", name)
		return c
	}
	values, err := godotenv.Unmarshal(content)
	if err != nil {
		c.Status, c.Message = StatusFail, fmt.Sprintf("%s could not be parsed: %v", name, err)
		return c
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unset, err := envfile.Unset(afs, path, keys)
	if err != nil {
		c.Status, c.Message = StatusWarn, fmt.Sprintf("Could not read %s", name)
		return c
	}
	if len(unset) > 0 {
		c.Status = StatusWarn
		c.Message = fmt.Sprintf("%s is missing values for %s", name, strings.Join(unset, ", "))
		c.Fix = "fill in the placeholders in " + name
		return c
	}

	c.Status, c.Message = StatusPass, name+" exists"
	return c
}

var versionToken = regexp.MustCompile(`\d+(\.\d+){0,2}`)

func checkFramework(pkg []byte, pkgErr error, minimums map[string]string) Check {
	c := Check{Name: "Framework"}
	if pkgErr != nil {
		c.Status, c.Message = StatusWarn, "Could not read package.json"
		return c
	}

	names := make([]string, 0, len(minimums))
	for name := range minimums {
		names = append(names, name)
	}
	sort.Strings(names)

	var outdated, stale, found []string
	for _, name := range names {
		declared := gjson.GetBytes(pkg, "dependencies."+gjson.Escape(name))
		if !declared.Exists() {
			continue
		}
		found = append(found, name)

		rng := strings.TrimSpace(declared.String())
		if rng == "latest" || rng == "*" {
			continue
		}
		if _, err := semver.NewConstraint(rng); err != nil {
			outdated = append(outdated, fmt.Sprintf("%s has an unrecognised range %q", name, rng))
			continue
		}
		floor := versionToken.FindString(rng)
		if floor == "" {
			continue
		}
		have, err := semver.NewVersion(floor)
		if err != nil {
			continue
		}
		want, err := semver.NewVersion(minimums[name])
		if err != nil {
			continue
		}
		if have.LessThan(want) {
			outdated = append(outdated, fmt.Sprintf("%s %s is below %s", name, rng, want.String()))
			stale = append(stale, name+"@latest")
		}
	}

	switch {
	case len(outdated) > 0:
		c.Status = StatusWarn
		c.Message = strings.Join(outdated, "; ")
		if len(stale) > 0 {
			c.Fix = "npm install " + strings.Join(stale, " ")
		}
	case len(found) == 0:
		c.Status, c.Message = StatusPass, "No tracked frameworks declared"
	default:
		c.Status, c.Message = StatusPass, "Framework versions are current"
	}
	return c
}
