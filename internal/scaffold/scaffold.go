// Package scaffold writes plugin-declared files into a project tree.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/alexisbeaulieu97/createforge/internal/plugin"
)

// Result lists the relative paths written and skipped, in declaration order.
type Result struct {
	Written []string
	Skipped []string
}

// Scaffold writes each file under root. An existing file is left untouched unless
// the declaration sets Overwrite. The first error stops the loop; files handled
// before it stay written and are reported in the returned Result.
func Scaffold(fs afero.Fs, root string, files []plugin.File) (Result, error) {
	var res Result

	for _, f := range files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))

		if err := fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return res, fmt.Errorf("create directory for %s: %w", f.Path, err)
		}

		exists, err := afero.Exists(fs, target)
		if err != nil {
			return res, fmt.Errorf("check %s: %w", f.Path, err)
		}
		if exists && !f.Overwrite {
			res.Skipped = append(res.Skipped, f.Path)
			continue
		}

		if err := afero.WriteFile(fs, target, []byte(f.Content), 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", f.Path, err)
		}
		res.Written = append(res.Written, f.Path)
	}

	return res, nil
}
