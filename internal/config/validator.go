package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_key", func(fl validator.FieldLevel) bool {
			return componentKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("relative_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if path == "" || filepath.IsAbs(path) {
				return false
			}
			clean := filepath.ToSlash(filepath.Clean(path))
			return clean != ".." && !strings.HasPrefix(clean, "../")
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings performs schema validation on project settings.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return patchworkerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// ValidateManifest performs schema and cross-component validation on a remote
// registry manifest.
func ValidateManifest(manifest *Manifest) error {
	if manifest == nil {
		return patchworkerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(manifest); err != nil {
		return convertValidationError(err)
	}

	keys := make(map[string]struct{}, len(manifest.Components))
	for i, c := range manifest.Components {
		if _, exists := keys[c.Key]; exists {
			return patchworkerrors.NewValidationError(
				fmt.Sprintf("components[%d].key", i),
				fmt.Sprintf("duplicate component key %q", c.Key), nil)
		}
		keys[c.Key] = struct{}{}
	}

	for i, c := range manifest.Components {
		for _, req := range c.Requires {
			if _, ok := keys[req]; !ok {
				return patchworkerrors.NewValidationError(
					fmt.Sprintf("components[%d].requires", i),
					fmt.Sprintf("component %q requires unknown component %q", c.Key, req), nil)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		field := strings.ToLower(first.Namespace())
		message := fmt.Sprintf("failed %q validation", first.Tag())
		return patchworkerrors.NewValidationError(field, message, err)
	}

	return patchworkerrors.NewValidationError("", err.Error(), err)
}
