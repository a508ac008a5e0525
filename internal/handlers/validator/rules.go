package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewContractValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("work_date", dateValidator),
		},
		{
			Rule: registerFn("clock", clockValidator),
		},
		{
			Rule: registerFn("work_days", workDaysValidator),
		},
	}
}

func NewOnboardingValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("section", sectionValidator),
		},
		{
			Rule: registerFn("invite_token", tokenValidator),
		},
	}
}
