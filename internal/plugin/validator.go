package plugin

import (
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	pluginIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	envKeyPattern   = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator used for catalog entries.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("plugin_id", func(fl validator.FieldLevel) bool {
			return pluginIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("env_key", func(fl validator.FieldLevel) bool {
			return envKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, ok := categoryLabels[Category(fl.Field().String())]
			return ok
		})

		// Scaffold paths must stay inside the project root.
		_ = v.RegisterValidation("project_path", func(fl validator.FieldLevel) bool {
			p := fl.Field().String()
			if p == "" || strings.Contains(p, "\x00") || strings.Contains(p, `\`) {
				return false
			}
			if path.IsAbs(p) {
				return false
			}
			cleaned := path.Clean(p)
			return cleaned != "." && cleaned != ".." && !strings.HasPrefix(cleaned, "../")
		})

		validateInst = v
	})

	return validateInst
}
