package httpjson

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"pet-clinic-admin/internal/platform/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// los errores usan el nombre JSON del campo
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// messages por "campo.tag"; si no hay, se arma uno genérico.
var messages = map[string]string{
	"user_name.min": "Username must be at least 2 characters long",
	"password.min":  "Password must be at least 10 characters long",
	"email.email":   "Email must be a valid address",
}

// Validate corre las reglas `validate:"..."` de v. Si fallan devuelve
// apperr.Validation con un "campo: motivo" por falla.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %s", fe.Tag())
		}
		fields = append(fields, fe.Field()+": "+msg)
	}
	return apperr.Validation(fields)
}
