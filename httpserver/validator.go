package httpserver

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"phonebook/contact"
	"phonebook/errs"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("birthday", validateBirthday)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EINVALID, "%s", formatValidationError(err))
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return phonePattern.MatchString(fl.Field().String())
}

func validateBirthday(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := contact.NewBirthday(fl.Field().String())
	return err == nil
}

func formatValidationError(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			if field == "" {
				field = fe.StructField()
			}
			parts = append(parts, field+" failed on "+fe.Tag())
		}
		return "validation error: " + strings.Join(parts, "; ")
	}
	return "validation error"
}
