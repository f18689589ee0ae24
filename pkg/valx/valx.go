package valx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("REQUEST")

var CodeInvalidRequest = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidRequest is returned for malformed or incomplete request bodies
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

// Struct validates v against its `validate` tags
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ErrInvalidRequest().WithDetail("reason", err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field())+":"+fe.Tag())
	}
	return ErrInvalidRequest().WithDetail("fields", fields)
}
