// Package v1alpha1 holds the wire types of the HR workflow API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Action is one workflow action offered to the user for an entity.
type Action struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Variant string `json:"variant"`
	Icon    string `json:"icon,omitempty"`
}

type Application struct {
	Id            uuid.UUID `json:"id"`
	OrgId         string    `json:"org_id"`
	CandidateName string    `json:"candidate_name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Status        string    `json:"status"`
	Stage         string    `json:"stage"`
	HasContract   bool      `json:"has_contract"`
	Actions       []Action  `json:"actions"`
	Busy          bool      `json:"busy"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ApplicationList []Application

type Worker struct {
	Id       string `json:"id"`
	FullName string `json:"full_name,omitempty"`
}

type Contract struct {
	Id              uuid.UUID        `json:"id"`
	ApplicationId   *uuid.UUID       `json:"application_id,omitempty"`
	OrgId           string           `json:"org_id"`
	SigningStatus   *int             `json:"signing_status,omitempty"`
	CandidateStage  string           `json:"candidate_stage"`
	Worker          *Worker          `json:"worker,omitempty"`
	OrderPdfUrl     *string          `json:"order_pdf_url,omitempty"`
	OrderStage      string           `json:"order_stage"`
	Actions         []Action         `json:"actions"`
	Busy            bool             `json:"busy"`
	JobApplications []JobApplication `json:"job_applications,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type ContractList []Contract

type JobApplication struct {
	Id                 uuid.UUID `json:"id"`
	ContractId         uuid.UUID `json:"contract_id"`
	Stage              string    `json:"stage"`
	ReviewStatus       *string   `json:"review_status,omitempty"`
	SignedPdfUrl       *string   `json:"signed_pdf_url,omitempty"`
	ShowDownloadButton bool      `json:"show_download_button"`
	ShowUploadButton   bool      `json:"show_upload_button"`
	ShowReviewButtons  bool      `json:"show_review_buttons"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type JobApplicationList []JobApplication

type SectionStatus struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields,omitempty"`
	MissingFiles  []string `json:"missing_files,omitempty"`
}

type OnboardingProgress struct {
	Token         string                   `json:"token"`
	Sections      map[string]SectionStatus `json:"sections"`
	IsComplete    bool                     `json:"is_complete"`
	DisabledSteps []string                 `json:"disabled_steps"`
}

type WizardProgress struct {
	Sections map[string]SectionStatus `json:"sections"`
	Complete bool                     `json:"complete"`
}

type DownloadLink struct {
	Url string `json:"url"`
}

type Error struct {
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}
