package types

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationMessages validates v and returns the user-facing message of every
// failing field, in field declaration order. Each field names its message in a
// `msg` struct tag; fields without one fall back to the validator's own text.
func ValidationMessages(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("msg"); msg != "" {
				messages = append(messages, msg)
				continue
			}
		}
		messages = append(messages, fe.Error())
	}
	return messages
}
