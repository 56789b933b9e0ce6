package utils

import (
	"regexp"
	"unicode/utf16"
)

const (
	MsgNombreCorto     = "El nombre debe tener al menos 2 caracteres"
	MsgNombreInvalido  = "El nombre solo puede contener letras y espacios"
	MsgCorreoRequerido = "El correo electrónico es requerido"
	MsgCorreoInvalido  = "Ingresa un correo electrónico válido"
	MsgContrasenaCorta = "La contraseña debe tener al menos 8 caracteres"
	MsgContrasenaDebil = "Debe incluir mayúsculas, minúsculas y números"
)

const (
	minNombreLen     = 2
	minContrasenaLen = 8
)

// space is the whitespace set browsers use for \s, wider than Go's ASCII \s.
const space = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	nombreRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ` + space + `]+$`)
	correoRe = regexp.MustCompile(`^[^@` + space + `]+@[^@` + space + `]+\.[^@` + space + `]+$`)

	lowerRe = regexp.MustCompile(`[a-z]`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// Length counts UTF-16 code units, the way browsers measure input values.
// Characters outside the BMP count as two.
func Length(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}

// Rule checks a raw field value. An empty message means the value passed.
type Rule func(value string) (bool, string)

func ValidateNombre(value string) (bool, string) {
	if Length(value) < minNombreLen {
		return false, MsgNombreCorto
	}
	if !nombreRe.MatchString(value) {
		return false, MsgNombreInvalido
	}
	return true, ""
}

// ValidateCorreo only checks a local@domain.tld shape, not RFC 5322.
func ValidateCorreo(value string) (bool, string) {
	if value == "" {
		return false, MsgCorreoRequerido
	}
	if !correoRe.MatchString(value) {
		return false, MsgCorreoInvalido
	}
	return true, ""
}

func ValidateContrasena(value string) (bool, string) {
	if Length(value) < minContrasenaLen {
		return false, MsgContrasenaCorta
	}
	if !lowerRe.MatchString(value) || !upperRe.MatchString(value) || !digitRe.MatchString(value) {
		return false, MsgContrasenaDebil
	}
	return true, ""
}

var rules = map[string]Rule{
	"nombre":     ValidateNombre,
	"correo":     ValidateCorreo,
	"contrasena": ValidateContrasena,
}

// RuleFor returns the rule registered under a field name.
func RuleFor(field string) (Rule, bool) {
	r, ok := rules[field]
	return r, ok
}
