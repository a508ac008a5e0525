package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thoas/go-funk"
)

var (
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	tokenRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{8,128}$`)

	workDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	onboardingSections = []string{
		"personal_data", "identity_documents", "education", "work_experience",
		"family_members", "social_categories", "bank_details", "military_record",
		"additional_files",
	}
)

func dateValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if val == "" {
		return true
	}

	_, err := time.Parse("2006-01-02", val)
	return err == nil
}

func clockValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if val == "" {
		return true
	}

	return clockRegex.MatchString(val)
}

func workDaysValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	for _, day := range val {
		if !funk.ContainsString(workDays, day) {
			return false
		}
	}
	return true
}

func sectionValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return funk.ContainsString(onboardingSections, val)
}

func tokenValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return tokenRegex.MatchString(val)
}
