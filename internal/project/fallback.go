package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

const readmeTemplate = "# %[1]s\n\n" +
	"Created with [CreateForge](https://forge.dev): ship full-stack apps, not scaffolds.\n\n" +
	"## Getting Started\n\n" +
	"```bash\nnpm install\nnpm run dev\n```\n\n" +
	"Open [http://localhost:3000](http://localhost:3000) to see your app.\n\n" +
	"## What's Included\n\n" +
	"- Next.js 14 with App Router\n" +
	"- TypeScript\n" +
	"- Battle-tested configuration\n" +
	"- Ready to deploy\n\n" +
	"## Next Steps\n\n" +
	"- Add plugins: `forge add stripe`\n" +
	"- Check health: `forge health`\n\n" +
	"---\n\nBuilt with CreateForge (template: %[2]s)\n"

// WriteFallback writes a minimal Next.js skeleton into dir. It is used when the
// template repository cannot be cloned.
func WriteFallback(fs afero.Fs, dir, name, templateID string) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	pkg := packageJSON{
		Name:    name,
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
			"test":  "vitest",
		},
		Dependencies: map[string]string{
			"next":      "^14.0.0",
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@types/node":  "^20.0.0",
			"@types/react": "^18.2.0",
			"typescript":   "^5.3.0",
			"vitest":       "^1.0.0",
		},
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode package.json: %w", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(dir, "package.json"), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write package.json: %w", err)
	}

	readme := fmt.Sprintf(readmeTemplate, name, templateID)
	if err := afero.WriteFile(fs, filepath.Join(dir, "README.md"), []byte(readme), 0o644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}
	return nil
}
