package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	routePattern = regexp.MustCompile(`^/[a-z0-9_/-]*$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the `route` and `slug` tags on gin's default
// validator and makes field errors report JSON names. Safe to call more
// than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected binding validator engine")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("route", matches(routePattern)); err != nil {
			registerErr = fmt.Errorf("register route validator: %w", err)
			return
		}
		if err := v.RegisterValidation("slug", matches(slugPattern)); err != nil {
			registerErr = fmt.Errorf("register slug validator: %w", err)
		}
	})
	return registerErr
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindingError describes a request binding failure as a field and a
// message. Malformed JSON yields an empty field.
func BindingError(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "invalid payload"
	}

	fe := verrs[0]
	field = fe.Field()
	switch fe.Tag() {
	case "required":
		return field, "is required"
	case "route":
		return field, "must start with / and contain only lowercase letters, digits, -, _ and /"
	case "slug":
		return field, "must be lowercase words separated by single hyphens"
	case "gt":
		return field, "must be greater than " + fe.Param()
	case "min":
		return field, "cannot be empty"
	case "max":
		return field, "must be at most " + fe.Param() + " characters"
	default:
		return field, "is invalid"
	}
}
