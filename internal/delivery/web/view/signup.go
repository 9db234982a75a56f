// Package view holds the pure presentation logic behind the web pages.
package view

import (
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/errors"
)

const minPasswordLength = 8

const (
	MsgFillAllFields    = "Please fill in all fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgWeakPassword     = "Password must be 8+ characters with uppercase and number"
	MsgInvalidEmail     = "Please enter a valid email"
	MsgInvalidState     = "Please choose a state of the selected country"
)

var signupEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// countryStates is the fixed set of locations a business may register in.
var countryStates = map[string][]string{
	"Nigeria": {"Lagos", "Abuja", "Kano", "Rivers", "Oyo"},
	"Ghana":   {"Accra", "Kumasi", "Tamale", "Takoradi", "Sunyani"},
	"Kenya":   {"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"},
}

// Countries returns the selectable countries in alphabetical order.
func Countries() []string {
	countries := make([]string, 0, len(countryStates))
	for country := range countryStates {
		countries = append(countries, country)
	}
	slices.Sort(countries)

	return countries
}

// States returns the states of country, or nil for an unknown one.
func States(country string) []string {
	return slices.Clone(countryStates[country])
}

// SignupForm is the business signup form as posted by the browser.
type SignupForm struct {
	Name            string `form:"name" validate:"required"`
	Phone           string `form:"phone" validate:"required"`
	Email           string `form:"email" validate:"required,signup_email"`
	Country         string `form:"country" validate:"required"`
	State           string `form:"state" validate:"required"`
	Hours           string `form:"hours" validate:"required"`
	Description     string `form:"description" validate:"required"`
	Password        string `form:"password" validate:"required,strong_password"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// ToRequest maps the form onto the api signup body.
func (f SignupForm) ToRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Name:        f.Name,
		Email:       f.Email,
		Password:    f.Password,
		Phone:       f.Phone,
		Country:     f.Country,
		State:       f.State,
		Hours:       f.Hours,
		Description: f.Description,
	}
}

var signupValidate = newSignupValidator()

func newSignupValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "signup_email", func(fl validator.FieldLevel) bool {
		return signupEmailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		form, _ := sl.Current().Interface().(SignupForm)
		if form.Country == "" || form.State == "" {
			return
		}
		if !slices.Contains(countryStates[form.Country], form.State) {
			sl.ReportError(form.State, "State", "State", "country_state", "")
		}
	}, SignupForm{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsStrongPassword applies the signup rule: at least eight characters with an
// uppercase letter A-Z and a digit 0-9.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	return hasUpper && hasDigit
}

// ValidateSignup returns the message to show for the first broken rule, or ""
// when the form may be submitted. Rules are checked in the order the form
// presents them: completeness, password match, strength, email, location.
func ValidateSignup(form SignupForm) string {
	err := signupValidate.Struct(form)
	if err == nil {
		return ""
	}

	failed, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return MsgFillAllFields
	}

	tags := make(map[string]bool, len(failed))
	for _, fe := range failed {
		tags[fe.Tag()] = true
	}

	switch {
	case tags["required"]:
		return MsgFillAllFields
	case tags["eqfield"]:
		return MsgPasswordMismatch
	case tags["strong_password"]:
		return MsgWeakPassword
	case tags["signup_email"]:
		return MsgInvalidEmail
	default:
		return MsgInvalidState
	}
}
