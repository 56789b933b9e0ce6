package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"registro/config"
	"registro/middlewares"
	"registro/models"
	"registro/store"
	"registro/utils"
	"registro/views"
)

type FieldEvent struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

// NewForm starts a new form session and renders it.
func NewForm(c *fiber.Ctx) error {
	state := store.Forms.New()
	log.Debugf("form %s created", state.ID)
	return renderPage(c, state, "")
}

func ShowForm(c *fiber.Ctx) error {
	state, err := loadForm(c)
	if err != nil {
		return err
	}
	return renderPage(c, state, "")
}

// UpdateField stores a new value for one field and returns its refreshed view.
func UpdateField(c *fiber.Ctx) error {
	field, ev, err := parseFieldEvent(c)
	if err != nil {
		return err
	}

	state, err := updateForm(c, func(s *models.FormState) error {
		s.SetValue(field, ev.Value)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(fieldResponse(state, field))
}

func BlurField(c *fiber.Ctx) error {
	field, _, err := parseFieldEvent(c)
	if err != nil {
		return err
	}

	state, err := updateForm(c, func(s *models.FormState) error {
		s.Blur(field)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(fieldResponse(state, field))
}

func TogglePassword(c *fiber.Ctx) error {
	// The no-script form posts its current values along with the toggle.
	var form *models.RegistrationForm
	if isFormPost(c) {
		form = new(models.RegistrationForm)
		if err := c.BodyParser(form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
		}
	}

	state, err := updateForm(c, func(s *models.FormState) error {
		if form != nil {
			s.SetValues(*form)
		}
		s.TogglePassword()
		return nil
	})
	if err != nil {
		return err
	}

	if wantsHTML(c) {
		return c.Redirect("/registro/"+state.ID, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"showPassword": state.ShowPassword,
		"inputType":    state.PasswordInputType(),
	})
}

// Submit touches every field and, when all of them pass, answers with the
// confirmation and discards the form. No account is created.
func Submit(c *fiber.Ctx) error {
	var form *models.RegistrationForm
	if len(c.Body()) > 0 {
		form = new(models.RegistrationForm)
		if err := c.BodyParser(form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
		}
	}

	state, err := updateForm(c, func(s *models.FormState) error {
		if form != nil {
			s.SetValues(*form)
		}
		s.TouchAll()
		return nil
	})
	if err != nil {
		return err
	}

	if !state.IsComplete() {
		middlewares.SubmissionsTotal.WithLabelValues("rejected").Inc()
		if wantsHTML(c) {
			c.Status(fiber.StatusUnprocessableEntity)
			return renderPage(c, state, "")
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": state.Errors()})
	}

	middlewares.SubmissionsTotal.WithLabelValues("accepted").Inc()
	store.Forms.Delete(state.ID)
	log.Infof("form %s submitted", state.ID)

	if wantsHTML(c) {
		return renderPage(c, state, state.Confirmation())
	}
	return c.JSON(fiber.Map{"message": state.Confirmation()})
}

// ValidateRegistration checks a complete registration body without a form session.
func ValidateRegistration(c *fiber.Ctx) error {
	var form models.RegistrationForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := utils.Validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FormatValidationErrors(err)})
	}
	return c.JSON(fiber.Map{"valid": true})
}

func loadForm(c *fiber.Ctx) (models.FormState, error) {
	state, err := store.Forms.Get(c.Params("id"))
	if errors.Is(err, store.ErrFormNotFound) {
		return state, fiber.NewError(fiber.StatusNotFound, "Form not found")
	}
	return state, err
}

// updateForm applies fn to the form named in the route under the store lock.
func updateForm(c *fiber.Ctx, fn func(*models.FormState) error) (models.FormState, error) {
	state, err := store.Forms.Update(c.Params("id"), fn)
	if errors.Is(err, store.ErrFormNotFound) {
		return state, fiber.NewError(fiber.StatusNotFound, "Form not found")
	}
	return state, err
}

func parseFieldEvent(c *fiber.Ctx) (models.Field, FieldEvent, error) {
	var ev FieldEvent
	if err := c.BodyParser(&ev); err != nil {
		return 0, ev, fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	field, err := models.ParseField(ev.Field)
	if err != nil {
		return 0, ev, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return field, ev, nil
}

func fieldResponse(state models.FormState, field models.Field) fiber.Map {
	resp := fiber.Map{
		"field":       state.FieldView(field),
		"complete":    state.IsComplete(),
		"submitLabel": state.SubmitLabel(),
		"strength":    nil,
	}
	if s, ok := state.Strength(); ok {
		resp["strength"] = s
	}
	return resp
}

func renderPage(c *fiber.Ctx, state models.FormState, confirmation string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return views.RenderForm(c, views.NewFormPage(views.Layout{Title: config.AppName, Footer: config.FooterHTML}, state, confirmation))
}

func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

func isFormPost(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm)
}
