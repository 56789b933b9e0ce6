package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"registro/models"
	"registro/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var formTmpl = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// footerPolicy allows the links and inline formatting an operator may put in
// the footer markup.
var footerPolicy = bluemonday.UGCPolicy()

// Layout carries the operator-configured parts of the page.
type Layout struct {
	Title string
	// Footer is HTML; it is sanitized before rendering.
	Footer string
}

type fieldInput struct {
	models.FieldView
	Label       string
	Type        string
	Value       string
	Placeholder string
}

type FormPage struct {
	ID           string
	Title        string
	Footer       template.HTML
	Fields       []fieldInput
	ShowPassword bool
	Strength     utils.Strength
	ShowStrength bool
	Complete     bool
	SubmitLabel  string
	Confirmation []string
}

var labels = map[models.Field][3]string{
	models.Nombre:     {"Nombre completo", "text", "Ingresa tu nombre completo"},
	models.Correo:     {"Correo electrónico", "email", "ejemplo@correo.com"},
	models.Contrasena: {"Contraseña", "password", "Mínimo 8 caracteres"},
}

// NewFormPage builds the template data for a form. confirmation is shown in
// place of the form when non-empty.
func NewFormPage(layout Layout, s models.FormState, confirmation string) FormPage {
	page := FormPage{
		ID:           s.ID,
		Title:        layout.Title,
		Footer:       template.HTML(footerPolicy.Sanitize(layout.Footer)),
		ShowPassword: s.ShowPassword,
		Complete:     s.IsComplete(),
		SubmitLabel:  s.SubmitLabel(),
	}
	if confirmation != "" {
		page.Confirmation = strings.Split(confirmation, "\n")
	}
	page.Strength, page.ShowStrength = s.Strength()

	for _, f := range models.Fields {
		l := labels[f]
		in := fieldInput{
			FieldView:   s.FieldView(f),
			Label:       l[0],
			Type:        l[1],
			Value:       s.Values.Get(f),
			Placeholder: l[2],
		}
		if f == models.Contrasena {
			in.Type = s.PasswordInputType()
		}
		page.Fields = append(page.Fields, in)
	}
	return page
}

func RenderForm(w io.Writer, page FormPage) error {
	return formTmpl.Execute(w, page)
}
