// Package envfile maintains the project's KEY=value environment file.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/alexisbeaulieu97/createforge/internal/plugin"
)

// DefaultPath is the environment file merged into when no override is configured.
const DefaultPath = ".env.local"

// Result describes a merge. Before and After hold the full file content.
type Result struct {
	Appended []string
	Before   string
	After    string
}

// Changed reports whether the merge wrote anything.
func (r Result) Changed() bool {
	return len(r.Appended) > 0
}

// Read returns the file content, treating a missing file as empty.
func Read(afs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Merge appends a `KEY=# description` line for every declared variable whose key
// text does not already occur anywhere in the file. The presence check is a plain
// substring search over the whole content, so a key mentioned in a comment or inside
// another value counts as present. The file is written once, and only when at least
// one line is appended.
func Merge(afs afero.Fs, path string, vars []plugin.EnvVar) (Result, error) {
	content, err := Read(afs, path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	result := Result{Before: content, After: content}

	staged := make([]string, 0, len(vars))
	for _, v := range vars {
		if strings.Contains(content, v.Key) {
			continue
		}
		staged = append(staged, fmt.Sprintf("%s=# %s", v.Key, v.Description))
		result.Appended = append(result.Appended, v.Key)
	}

	if len(staged) == 0 {
		return result, nil
	}

	updated := result.Before + "\n" + strings.Join(staged, "\n") + "\n"
	if err := afero.WriteFile(afs, path, []byte(updated), 0o644); err != nil {
		return Result{Before: result.Before, After: result.Before}, fmt.Errorf("write %s: %w", path, err)
	}

	result.After = updated
	return result, nil
}

// Unset parses the file and returns the keys that are missing or have an empty value.
// A placeholder written by Merge (`KEY=# description`) counts as unset.
func Unset(afs afero.Fs, path string, keys []string) ([]string, error) {
	content, err := Read(afs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var unset []string
	for _, key := range keys {
		value := strings.TrimSpace(values[key])
		if value == "" || strings.HasPrefix(value, "#") {
			unset = append(unset, key)
		}
	}
	return unset, nil
}
