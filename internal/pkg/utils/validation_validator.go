package utils

import (
	"caretray-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("meal_status", validateMealStatus)
	validate.RegisterValidation("delivery_status", validateDeliveryStatus)
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.GenderMale || value == constvars.GenderFemale || value == constvars.GenderOther
}

func validateMealStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.MealStatusPending ||
		value == constvars.MealStatusInProgress ||
		value == constvars.MealStatusCompleted
}

func validateDeliveryStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.DeliveryStatusPending || value == constvars.DeliveryStatusCompleted
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}
