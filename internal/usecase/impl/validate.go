package impl

import (
	"reflect"
	"sync"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// messageTag names the struct tag holding the client-facing failure message.
const messageTag = "msg"

var inputValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
})

// validateInput checks the validate tags of a use-case DTO and reports only
// the first failing field, using that field's msg tag as the message.
func validateInput(input any) error {
	err := inputValidator().Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate input")
	}

	first := fieldErrs[0]
	message := fieldMessage(input, first.StructField())
	if message == "" {
		message = domainerrors.ErrValidationFailed.Message()
	}

	return domainerrors.ErrValidationFailed.
		WithMessage(message).
		WithDetails(first.StructField() + " failed " + first.Tag())
}

func fieldMessage(input any, field string) string {
	t := reflect.TypeOf(input)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}

	f, ok := t.FieldByName(field)
	if !ok {
		return ""
	}

	return f.Tag.Get(messageTag)
}
