// Package validate wraps go-playground/validator with JSON field names and
// a single error type that handlers map to 400.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	slugRe  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,19}$`)
)

// FieldError одна ошибка проверки поля.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError возвращается, когда вход не проходит проверку.
// Field и Reason описывают первую ошибку, Fields содержит все.
type ValidationError struct {
	Field  string
	Reason string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Details склеивает все ошибки в одну строку для ответа.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Reason)
	}
	return strings.Join(parts, "; ")
}

// NewError ошибка проверки одного поля, для проверок вне тегов.
func NewError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Fields: []FieldError{{Field: field, Reason: reason}},
	}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct проверяет структуру по тегам validate. Возвращает *ValidationError
// или nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: передали не структуру
		return fmt.Errorf("validate: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fieldPath(fe)
		out.Fields = append(out.Fields, FieldError{
			Field:  field,
			Reason: message(field, fe.Tag(), fe.Param()),
		})
	}
	out.Field = out.Fields[0].Field
	out.Reason = out.Fields[0].Reason

	return out
}

// fieldPath отбрасывает имя корневой структуры: "CreateGalleryRequest.imageUrl" -> "imageUrl".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(field, tag, param string) string {
	// "url|eq=": пустое значение разрешено, сообщение по первому правилу
	if i := strings.Index(tag, "|"); i > 0 {
		tag = tag[:i]
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "slug":
		return fmt.Sprintf("%s must contain only lowercase letters, numbers and hyphens", field)
	case "objectid":
		return fmt.Sprintf("%s must be a valid object id", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	default:
		return fmt.Sprintf("%s failed on %s", field, tag)
	}
}
