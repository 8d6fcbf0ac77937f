package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// jsonSerializer replaces echo's encoding/json based serializer.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(ctx echo.Context, i any, indent string) error {
	enc := json.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(ctx echo.Context, i any) error {
	err := json.NewDecoder(ctx.Request().Body).Decode(i)

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("unmarshal type error: expected=%v, got=%v, field=%v, offset=%v",
				typeErr.Type, typeErr.Value, typeErr.Field, typeErr.Offset),
		).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error()),
		).SetInternal(err)
	default:
		return err
	}
}

// requestValidator checks the validate tags of decoded request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate reports failed fields as a ValueIsInvalidError naming every field.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}

	return errs.NewValueIsInvalidErrorWithCause("body", errors.New(strings.Join(fields, ", ")))
}

// bind decodes the request body into body and validates it.
func bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}
