package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Cloner fetches a template repository into dest.
type Cloner interface {
	Clone(ctx context.Context, url, dest string) error
}

// Initializer turns dir into a fresh git repository with one commit.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// GitCloner clones a template and drops its history so the result is a plain
// source tree.
type GitCloner struct {
	// Depth limits fetched history; zero fetches everything.
	Depth int
}

var _ Cloner = GitCloner{}

// NewGitCloner returns a cloner that fetches only the latest commit.
func NewGitCloner() GitCloner {
	return GitCloner{Depth: 1}
}

func (g GitCloner) Clone(ctx context.Context, url, dest string) error {
	if _, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   url,
		Depth: g.Depth,
	}); err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		return fmt.Errorf("remove template history: %w", err)
	}
	return nil
}

// InitialCommitMessage is the message of the commit created by GitInitializer.
const InitialCommitMessage = "Initial commit from CreateForge"

// GitInitializer creates a repository and commits every file in it.
type GitInitializer struct {
	// Author overrides the commit identity. When nil the global git config is
	// consulted, falling back to a CreateForge identity.
	Author *object.Signature
	Now    func() time.Time
}

var _ Initializer = GitInitializer{}

func (g GitInitializer) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	if _, err := wt.Commit(InitialCommitMessage, &git.CommitOptions{Author: g.signature()}); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

func (g GitInitializer) signature() *object.Signature {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	if g.Author != nil {
		sig := *g.Author
		if sig.When.IsZero() {
			sig.When = now()
		}
		return &sig
	}

	sig := &object.Signature{Name: "CreateForge", Email: "forge@createforge.dev", When: now()}
	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil {
		if cfg.User.Name != "" {
			sig.Name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			sig.Email = cfg.User.Email
		}
	}
	return sig
}
