package utils

type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "debil"
	StrengthMedium StrengthLevel = "media"
	StrengthStrong StrengthLevel = "fuerte"
)

type Strength struct {
	Level   StrengthLevel `json:"level"`
	Label   string        `json:"label"`
	Percent int           `json:"percent"`
}

// PasswordStrength reports false for an empty password, where no indicator is shown.
func PasswordStrength(value string) (Strength, bool) {
	if value == "" {
		return Strength{}, false
	}
	if ok, _ := ValidateContrasena(value); ok {
		return Strength{Level: StrengthStrong, Label: "Fuerte", Percent: 100}, true
	}
	if Length(value) >= 4 {
		return Strength{Level: StrengthMedium, Label: "Media", Percent: 60}, true
	}
	return Strength{Level: StrengthWeak, Label: "Débil", Percent: 30}, true
}
