package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// EventSpec bundles a payload validator with the definition it derives
type EventSpec interface {
	ID() string
	Validate(raw json.RawMessage) (interface{}, error)
	Define(payload interface{}) model.EventDefinition
}

// Spec is an EventSpec whose payload is decoded into P and checked by its validate tags
type Spec[P any] struct {
	EventID    string
	Defaults   func() P
	DefineFunc func(payload P) model.EventDefinition
}

var _ EventSpec = Spec[struct{}]{}

// ID ...
func (s Spec[P]) ID() string {
	return s.EventID
}

// Validate decodes raw into P and returns P or a *apperr.ValidationError
func (s Spec[P]) Validate(raw json.RawMessage) (interface{}, error) {
	var payload P
	if s.Defaults != nil {
		payload = s.Defaults()
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("{}")
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return nil, apperr.NewValidationError("invalid payload", decodeIssue(err))
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, apperr.NewValidationError("invalid payload", apperr.Issue{
			Code:    "invalid_json",
			Message: "unexpected data after payload",
		})
	}

	if err := payloadValidator.Struct(payload); err != nil {
		return nil, apperr.NewValidationError("invalid payload", validationIssues(err)...)
	}
	return payload, nil
}

// Define ...
func (s Spec[P]) Define(payload interface{}) model.EventDefinition {
	return s.DefineFunc(payload.(P))
}

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("maxdp", maxDecimalPlaces); err != nil {
		panic(err)
	}
	return v
}

// maxDecimalPlaces checks that a float field has at most param digits after the point
func maxDecimalPlaces(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(err)
	}
	d := decimal.NewFromFloat(fl.Field().Float())
	return d.Equal(d.Round(int32(places)))
}

func decodeIssue(err error) apperr.Issue {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return apperr.Issue{
			Path:    typeErr.Field,
			Code:    "invalid_type",
			Message: fmt.Sprintf("expected %s, received %s", typeErr.Type.String(), typeErr.Value),
		}
	case errors.As(err, &syntaxErr):
		return apperr.Issue{
			Code:    "invalid_json",
			Message: syntaxErr.Error(),
		}
	}

	const unknownFieldPrefix = "json: unknown field "
	msg := err.Error()
	if strings.HasPrefix(msg, unknownFieldPrefix) {
		field := strings.Trim(strings.TrimPrefix(msg, unknownFieldPrefix), `"`)
		return apperr.Issue{
			Path:    field,
			Code:    "unrecognized_keys",
			Message: fmt.Sprintf("unrecognized key %q", field),
		}
	}

	return apperr.Issue{
		Code:    "invalid_json",
		Message: msg,
	}
}

func validationIssues(err error) []apperr.Issue {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []apperr.Issue{{Code: "custom", Message: err.Error()}}
	}

	issues := make([]apperr.Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, apperr.Issue{
			Path:    fieldPath(fe.Namespace()),
			Code:    issueCode(fe),
			Message: issueMessage(fe),
		})
	}
	return issues
}

// fieldPath strips the root struct name from the validator namespace
func fieldPath(namespace string) string {
	_, path, ok := strings.Cut(namespace, ".")
	if !ok {
		return namespace
	}
	return path
}

func issueCode(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "invalid_type"
	case "gte", "gt", "min":
		return "too_small"
	case "lte", "lt", "max":
		return "too_big"
	case "maxdp":
		return "too_precise"
	case "ne":
		return "invalid_value"
	default:
		return "invalid_" + fe.Tag()
	}
}

func issueMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte", "min":
		if isString {
			return fmt.Sprintf("must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte", "max":
		if isString {
			return fmt.Sprintf("must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "maxdp":
		return fmt.Sprintf("must have at most %s decimal place(s)", fe.Param())
	case "ne":
		return fmt.Sprintf("must not be %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
