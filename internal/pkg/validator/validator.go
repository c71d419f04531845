package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/fuelprice-microservice/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Кастомное правило для enum топлива: gasoline | diesel | lpg | ev
	_ = validate.RegisterValidation("fueltype", func(fl validator.FieldLevel) bool {
		return domain.FuelType(fl.Field().String()).Valid()
	})
}

// Validate - валидация структуры по validate-тегам
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
