// Package template holds the catalog of starter project templates.
package template

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Template describes a starter repository that create can clone.
type Template struct {
	ID           string   `validate:"required,template_id"`
	Name         string   `validate:"required"`
	Description  string   `validate:"required"`
	Tags         []string `validate:"dive,required,lowercase"`
	Repo         string   `validate:"required,repo_ref"`
	Featured     bool
	BattleTested bool
	HasTests     bool
	HasSeedData  bool
	PreviewURL   string `validate:"omitempty,url"`
}

// CloneURL joins the repository reference onto a git host base URL.
func (t Template) CloneURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + t.Repo + ".git"
}

// HasTag reports whether the template carries tag, ignoring case.
func (t Template) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t Template) clone() Template {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	templateIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	repoRefPattern    = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
			return templateIDPattern.MatchString(fl.Field().String())
		})

		// owner/name on the configured git host
		_ = v.RegisterValidation("repo_ref", func(fl validator.FieldLevel) bool {
			return repoRefPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
