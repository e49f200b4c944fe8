package storage

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := project.ParseVariant(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

func validateDocument(doc *document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}
	doc.Template = strings.ToLower(strings.TrimSpace(doc.Template))
	return nil
}

// convertValidationError reports the first failing field by its stored key.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		var msg string
		switch ve.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is missing", field)
		case "variant":
			msg = fmt.Sprintf("unknown template %q", fmt.Sprint(ve.Value()))
		default:
			msg = fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("project", err.Error(), err)
}

func yamlLine(err error) int {
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
