package validator

import (
	"log"
	"reflect"

	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила в экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// без правила схемы процедур неполные, стартовать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'rating': целое в диапазоне models.MinRating..models.MaxRating
	mustRegister("rating", validateRating)
}

func validateRating(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r := fl.Field().Int()
		return r >= models.MinRating && r <= models.MaxRating
	default:
		return false
	}
}
