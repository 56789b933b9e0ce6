package models

import (
	"errors"
	"fmt"

	"registro/utils"
)

var ErrUnknownField = errors.New("unknown field")

type RegistrationForm struct {
	Nombre     string `json:"nombre" form:"nombre" validate:"nombre"`
	Correo     string `json:"correo" form:"correo" validate:"correo"`
	Contrasena string `json:"contrasena" form:"contrasena" validate:"contrasena"`
}

type Field int

const (
	Nombre Field = iota
	Correo
	Contrasena
	fieldCount
)

var fieldNames = [fieldCount]string{"nombre", "correo", "contrasena"}

// Fields lists the form fields in display order.
var Fields = []Field{Nombre, Correo, Contrasena}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (r RegistrationForm) Get(f Field) string {
	switch f {
	case Nombre:
		return r.Nombre
	case Correo:
		return r.Correo
	case Contrasena:
		return r.Contrasena
	}
	return ""
}

func (r *RegistrationForm) set(f Field, value string) {
	switch f {
	case Nombre:
		r.Nombre = value
	case Correo:
		r.Correo = value
	case Contrasena:
		r.Contrasena = value
	}
}

type FieldResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Evaluate runs the rule of a single field against value.
func Evaluate(f Field, value string) FieldResult {
	rule, ok := utils.RuleFor(f.String())
	if !ok {
		return FieldResult{}
	}
	valid, msg := rule(value)
	return FieldResult{Valid: valid, Error: msg}
}
