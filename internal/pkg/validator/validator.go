package validator

import (
	stderrors "errors"
	"strings"

	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("district_id", validateDistrictID)
}

// Validate - проверка DTO запроса, ошибки превращаются в AppError
// INVALID_REQUEST со списком полей.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"fields": fields})
}

// GetValidator - валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// validateDistrictID - отказ для пустых id и id с пробелами по краям
func validateDistrictID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id != "" && strings.TrimSpace(id) == id
}
