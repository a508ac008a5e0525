package v1alpha1

import "github.com/google/uuid"

type CreateApplicationRequest struct {
	CandidateName string `json:"candidate_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

type ReviewApplicationRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approved rejected revision"`
}

// WizardForm is the contract-wizard payload. Break times and the trial
// duration are validated only while their toggle is on.
type WizardForm struct {
	EmployeeName     string   `json:"employee_name"`
	Position         string   `json:"position"`
	Department       string   `json:"department"`
	StartDate        string   `json:"start_date" validate:"omitempty,work_date"`
	Salary           float64  `json:"salary" validate:"min=0"`
	Duties           []string `json:"duties"`
	Supervisor       string   `json:"supervisor"`
	WorkHoursPerWeek float64  `json:"work_hours_per_week" validate:"min=0"`
	WorkDays         []string `json:"work_days" validate:"work_days"`
	HasBreak         bool     `json:"has_break"`
	BreakStartTime   string   `json:"break_start_time,omitempty" validate:"omitempty,clock"`
	BreakEndTime     string   `json:"break_end_time,omitempty" validate:"omitempty,clock"`
	TrialPeriod      bool     `json:"trial_period"`
	TrialDuration    float64  `json:"trial_duration,omitempty" validate:"min=0"`
}

type CreateContractRequest struct {
	ApplicationId uuid.UUID  `json:"application_id" validate:"required"`
	Wizard        WizardForm `json:"wizard"`
}

type UpdateSigningStatusRequest struct {
	Status int `json:"status" validate:"min=0,max=9"`
}

type CompleteHiringRequest struct {
	WorkerFullName string `json:"worker_full_name" validate:"required"`
}

type UploadOrderRequest struct {
	SignedPdfUrl string `json:"signed_pdf_url" validate:"required,url"`
}

type UploadJobApplicationRequest struct {
	SignedPdfUrl string `json:"signed_pdf_url" validate:"required,url"`
}

type ReviewJobApplicationRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approved rejected revision"`
}

type StartOnboardingRequest struct {
	Token string `json:"token" validate:"required,invite_token"`
}

type OpenOnboardingSectionRequest struct {
	Section string `json:"section" validate:"required,section"`
}

type UpdateOnboardingSectionRequest struct {
	Section       string   `json:"section" validate:"required,section"`
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields,omitempty"`
	MissingFiles  []string `json:"missing_files,omitempty"`
}
