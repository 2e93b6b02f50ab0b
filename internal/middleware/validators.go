package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const notBlankTag = "notblank"

// RegisterValidators adds the custom binding tags to gin's validator and
// reports fields by their json names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Warn().Msg("gin binding engine is not validator/v10; custom tags not registered")
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(notBlankTag, notBlank); err != nil {
		log.Error().Err(err).Msg("Failed to register notblank validator")
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// BindingErrorDetails turns validator errors into "field: tag" strings.
func BindingErrorDetails(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := "failed " + fe.Tag()
		if fe.Tag() == notBlankTag {
			msg = "must not be blank"
		} else if fe.Tag() == "required" {
			msg = "is required"
		}
		details = append(details, fe.Field()+": "+msg)
	}
	return details
}
