package models

import (
	"fmt"
	"strings"

	"registro/utils"
)

type Icon string

const (
	IconNone  Icon = ""
	IconCheck Icon = "check"
	IconAlert Icon = "alert"
)

const (
	SubmitReady   = "Crear mi cuenta"
	SubmitPending = "Completa todos los campos"
)

var successMessages = [fieldCount]string{
	"✓ Nombre válido",
	"✓ Correo electrónico válido",
	"✓ Contraseña segura",
}

// FormState is the in-memory state of one displayed form. Copies never
// share state.
type FormState struct {
	ID           string
	Values       RegistrationForm
	ShowPassword bool

	results [fieldCount]FieldResult
	touched [fieldCount]bool
}

func NewFormState(id string) FormState {
	s := FormState{ID: id}
	s.Evaluate()
	return s
}

// Evaluate re-runs every field rule against the current values.
func (s *FormState) Evaluate() {
	for _, f := range Fields {
		s.results[f] = Evaluate(f, s.Values.Get(f))
	}
}

func (s *FormState) SetValue(f Field, value string) {
	s.Values.set(f, value)
	s.Evaluate()
}

func (s *FormState) SetValues(form RegistrationForm) {
	s.Values = form
	s.Evaluate()
}

func (s *FormState) Blur(f Field) {
	s.touched[f] = true
}

func (s *FormState) TouchAll() {
	for _, f := range Fields {
		s.touched[f] = true
	}
}

func (s *FormState) TogglePassword() {
	s.ShowPassword = !s.ShowPassword
}

func (s FormState) Result(f Field) FieldResult { return s.results[f] }

func (s FormState) Touched(f Field) bool { return s.touched[f] }

// IsComplete gates the submit button.
func (s FormState) IsComplete() bool {
	for _, f := range Fields {
		if !s.results[f].Valid {
			return false
		}
	}
	return true
}

func (s FormState) InputClass(f Field) string {
	if !s.touched[f] {
		return "form-control"
	}
	if s.results[f].Valid {
		return "form-control is-valid"
	}
	return "form-control is-invalid"
}

func (s FormState) Icon(f Field) Icon {
	if !s.touched[f] || s.Values.Get(f) == "" {
		return IconNone
	}
	if s.results[f].Valid {
		return IconCheck
	}
	return IconAlert
}

func (s FormState) ErrorMessage(f Field) string {
	if !s.touched[f] {
		return ""
	}
	return s.results[f].Error
}

func (s FormState) SuccessMessage(f Field) string {
	if !s.touched[f] || !s.results[f].Valid {
		return ""
	}
	return successMessages[f]
}

func (s FormState) PasswordInputType() string {
	if s.ShowPassword {
		return "text"
	}
	return "password"
}

func (s FormState) Strength() (utils.Strength, bool) {
	return utils.PasswordStrength(s.Values.Contrasena)
}

func (s FormState) SubmitLabel() string {
	if s.IsComplete() {
		return SubmitReady
	}
	return SubmitPending
}

// Confirmation is the message shown after a successful submit. The password
// is masked with one asterisk per character.
func (s FormState) Confirmation() string {
	return fmt.Sprintf("¡Formulario enviado exitosamente!\n\nNombre: %s\nCorreo: %s\nContraseña: %s",
		s.Values.Nombre,
		s.Values.Correo,
		strings.Repeat("*", utils.Length(s.Values.Contrasena)))
}

// Errors returns the failing fields' messages keyed by field name.
func (s FormState) Errors() map[string]string {
	errs := make(map[string]string)
	for _, f := range Fields {
		if msg := s.results[f].Error; msg != "" {
			errs[f.String()] = msg
		}
	}
	return errs
}

type FieldView struct {
	Field      string `json:"field"`
	Valid      bool   `json:"valid"`
	Touched    bool   `json:"touched"`
	InputClass string `json:"inputClass"`
	Icon       Icon   `json:"icon,omitempty"`
	Error      string `json:"error,omitempty"`
	Success    string `json:"success,omitempty"`
}

func (s FormState) FieldView(f Field) FieldView {
	return FieldView{
		Field:      f.String(),
		Valid:      s.results[f].Valid,
		Touched:    s.touched[f],
		InputClass: s.InputClass(f),
		Icon:       s.Icon(f),
		Error:      s.ErrorMessage(f),
		Success:    s.SuccessMessage(f),
	}
}
