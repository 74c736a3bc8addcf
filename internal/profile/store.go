package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
	validate      = validator.New()
)

// Store reads and writes the profile file.
type Store struct {
	fs   afero.Fs
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewStore returns a Store for path. A nil clock uses time.Now.
func NewStore(fsys afero.Fs, path string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{fs: fsys, path: path, now: now}
}

// Path returns the profile file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile. A missing file yields Defaults.
func (s *Store) Load() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Document{}, forgeerrors.NewParseError(s.path, 0, err)
	}

	doc := Defaults()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, forgeerrors.NewParseError(s.path, extractLine(err), err)
	}
	if err := check(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Save validates doc and replaces the profile file atomically.
func (s *Store) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *Store) save(doc Document) error {
	if err := check(doc); err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Update loads the profile, applies fn and saves the result.
func (s *Store) Update(fn func(*Document) error) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return Document{}, err
	}
	if err := fn(&doc); err != nil {
		return Document{}, err
	}
	if err := s.save(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// RecordProjectCreated bumps the project counter and last-used time.
func (s *Store) RecordProjectCreated() error {
	_, err := s.Update(func(d *Document) error {
		now := s.now().UTC()
		d.Stats.ProjectsCreated++
		d.Stats.LastUsed = &now
		return nil
	})
	return err
}

// RecordFirstSuccess stamps the first successful run; later calls keep the original time.
func (s *Store) RecordFirstSuccess() error {
	_, err := s.Update(func(d *Document) error {
		if d.Stats.FirstSuccess == nil {
			now := s.now().UTC()
			d.Stats.FirstSuccess = &now
		}
		return nil
	})
	return err
}

// AddRecentTemplate records id as the most recently used template.
func (s *Store) AddRecentTemplate(id string) error {
	_, err := s.Update(func(d *Document) error {
		d.Templates.Recent = PushRecent(d.Templates.Recent, id)
		return nil
	})
	return err
}

func (s *Store) SetName(name string) error {
	_, err := s.Update(func(d *Document) error {
		d.Profile.Name = name
		return nil
	})
	return err
}

func (s *Store) SetFavoriteStack(stack []string) error {
	_, err := s.Update(func(d *Document) error {
		d.Profile.FavoriteStack = append([]string{}, stack...)
		return nil
	})
	return err
}

func (s *Store) SetCodeStyle(style string) error {
	_, err := s.Update(func(d *Document) error {
		d.Profile.CodeStyle = style
		return nil
	})
	return err
}

func check(doc Document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		return forgeerrors.NewValidationError(ve.Namespace(), fmt.Sprintf("failed validation for tag '%s'", ve.Tag()), err)
	}
	return forgeerrors.NewValidationError("profile", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
