package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom validations shared by the request DTOs
var (
	validate *validator.Validate
	once     sync.Once
)

// identifier allows letters, digits and underscores, with a letter first.
// Hero names live under this rule.
func identifier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for i, char := range value {
		if i == 0 && !unicode.IsLetter(char) {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

// cardColor accepts the #RGB and #RRGGBB hex forms the board UI paints
// cards with.
func cardColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	if value[0] != '#' {
		return false
	}
	for _, char := range value[1:] {
		switch {
		case char >= '0' && char <= '9':
		case char >= 'a' && char <= 'f':
		case char >= 'A' && char <= 'F':
		default:
			return false
		}
	}
	return true
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", identifier)
		validate.RegisterValidation("card_color", cardColor)
	})
}
