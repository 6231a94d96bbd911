package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// MsgValidationFailed is the summary message of body validation errors.
const MsgValidationFailed = "Request validation failed"

// fieldMessages holds client-facing messages keyed by "<json field>.<tag>".
var fieldMessages = map[string]string{
	"title.notblank":        "Title must not be blank",
	"title.max":             fmt.Sprintf("Title must be at most %d characters", MaxTitleLength),
	"description.max":       fmt.Sprintf("Description must be at most %d characters", MaxDescriptionLength),
	"expiresAt.isodatetime": "Expires at must be an ISO-8601 date-time",
}

var getValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		_, ok := ParseDateTime(fl.Field().String())
		return ok
	}))
	return v
})

// validateStruct runs the struct's validate tags and converts failures to a
// *domain.ValidationError.
func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Message: MsgValidationFailed, Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed the %s=%s rule", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed the %s rule", fe.Tag())
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
