package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		// env_file must stay inside the project directory.
		_ = v.RegisterValidation("env_file", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if path == "" || filepath.IsAbs(path) || strings.ContainsAny(path, "\x00\\") {
				return false
			}
			clean := filepath.Clean(path)
			return clean != "." && clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings against their declared rules.
func Validate(s *Settings) error {
	if s == nil {
		return forgeerrors.NewValidationError("settings", "settings are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(s))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s must be one of [%s]", ve.Field(), ve.Param())
		}
		return forgeerrors.NewValidationError(ve.Field(), msg, err)
	}

	return forgeerrors.NewValidationError("settings", err.Error(), err)
}
