package plugin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// SetupFunc runs plugin specific side effects after packages, env vars and
// files are in place. It is invoked at most once per installation.
type SetupFunc func(ctx context.Context, fs afero.Fs, projectRoot string) error

// Hooks maps plugin ids to their optional post-install setup.
type Hooks map[string]SetupFunc

// For returns the setup hook for id, if any.
func (h Hooks) For(id string) (SetupFunc, bool) {
	if h == nil {
		return nil, false
	}
	fn, ok := h[id]
	return fn, ok && fn != nil
}

const prismaSchema = `generator client {
  provider = "prisma-client-js"
}

datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}
`

const shadcnComponents = `{
  "$schema": "https://ui.shadcn.com/schema.json",
  "style": "default",
  "rsc": true,
  "tsx": true,
  "tailwind": {
    "config": "tailwind.config.ts",
    "css": "app/globals.css",
    "baseColor": "slate",
    "cssVariables": true
  },
  "aliases": {
    "components": "@/components",
    "utils": "@/lib/utils"
  }
}
`

const shadcnUtils = `import { clsx, type ClassValue } from 'clsx'
import { twMerge } from 'tailwind-merge'

export function cn(...inputs: ClassValue[]) {
  return twMerge(clsx(inputs))
}
`

// BuiltinHooks returns the setup hooks for built-in plugins.
func BuiltinHooks() Hooks {
	return Hooks{
		"prisma": func(ctx context.Context, fs afero.Fs, root string) error {
			return writeIfAbsent(ctx, fs, filepath.Join(root, "prisma", "schema.prisma"), prismaSchema)
		},
		"shadcn": func(ctx context.Context, fs afero.Fs, root string) error {
			if err := writeIfAbsent(ctx, fs, filepath.Join(root, "components.json"), shadcnComponents); err != nil {
				return err
			}
			return writeIfAbsent(ctx, fs, filepath.Join(root, "lib", "utils.ts"), shadcnUtils)
		},
	}
}

func writeIfAbsent(ctx context.Context, fs afero.Fs, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if exists {
		return nil
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	return afero.WriteFile(fs, path, []byte(content), 0o644)
}
