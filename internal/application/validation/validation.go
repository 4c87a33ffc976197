// Package validation valida los DTOs de entrada con las etiquetas `validate:"..."`.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/booking"
)

// Error agrupa los errores por campo. errors.Is(err, domain.ErrValidation) es verdadero.
type Error struct {
	Fields []dto.FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return domain.ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return domain.ErrValidation }

// FieldErr construye un error de validación de un solo campo (reglas de negocio en use cases).
func FieldErr(field, message string) error {
	return &Error{Fields: []dto.FieldError{{Field: field, Message: message}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores reportan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	// decimal.Decimal se compara como número (gt=0, gte=0).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return booking.ValidTime(fl.Field().String())
	})
	return v
}

// Struct valida s y devuelve *Error con el detalle por campo.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	out := &Error{Fields: make([]dto.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, dto.FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateOrderRequest.items[0].quantity" → "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID válido"
	case "url":
		return "debe ser una URL válida"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "hhmm":
		return "debe tener el formato HH:MM"
	case "datetime":
		return "debe tener el formato " + fe.Param()
	case "number", "numeric":
		return "debe ser numérico"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "min":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("debe tener al menos %s elementos o caracteres", fe.Param())
		}
		return "debe ser al menos " + fe.Param()
	case "max":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("debe tener como máximo %s elementos o caracteres", fe.Param())
		}
		return "debe ser como máximo " + fe.Param()
	case "len":
		return "debe tener longitud " + fe.Param()
	default:
		return "no es válido (" + fe.Tag() + ")"
	}
}

func isLengthKind(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Slice || k == reflect.Map || k == reflect.Array
}
