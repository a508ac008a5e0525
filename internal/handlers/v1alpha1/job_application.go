package v1alpha1

import (
	"net/http"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service/mappers"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// (GET /api/v1/job-applications?contract_id=...)
func (s *ServiceHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	contractID, err := uuid.Parse(r.URL.Query().Get("contract_id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid contract_id"})
		return
	}

	jobApplications, err := s.jobApplicationSrv.ListJobApplications(r.Context(), contractID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	out := api.JobApplicationList{}
	for _, j := range jobApplications {
		out = append(out, mappers.JobApplicationToApi(j))
	}

	render.JSON(w, r, out)
}

// (GET /api/v1/job-applications/{id})
func (s *ServiceHandler) GetJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	jobApplication, err := s.jobApplicationSrv.GetJobApplication(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.JobApplicationToApi(*jobApplication))
}

// (POST /api/v1/job-applications/{id}/upload)
func (s *ServiceHandler) UploadJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.UploadJobApplicationRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}

	if err := s.validate(&form, s.baseValidator); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	jobApplication, err := s.jobApplicationSrv.UploadSigned(r.Context(), id, form.SignedPdfUrl)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.JobApplicationToApi(*jobApplication))
}

// (POST /api/v1/job-applications/{id}/review)
func (s *ServiceHandler) ReviewJobApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.ReviewJobApplicationRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}

	if err := s.validate(&form, s.baseValidator); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	outcome, valid := workflow.ParseReviewStatus(form.Outcome)
	if !valid {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "unknown review outcome"})
		return
	}

	jobApplication, err := s.jobApplicationSrv.Review(r.Context(), id, outcome)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.JobApplicationToApi(*jobApplication))
}
