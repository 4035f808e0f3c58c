package utils

import (
	"errors"
	"nutripulse-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("gender", validateGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleTypeNurse || value == constvars.RoleTypePatient
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.GenderMale || value == constvars.GenderFemale || value == constvars.GenderOther
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := primitive.ObjectIDFromHex(param)
	if err != nil {
		return err
	}

	return nil
}
