package v1alpha1

import (
	"net/http"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service/mappers"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// (GET /api/v1/applications)
func (s *ServiceHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := &service.ApplicationFilter{
		OrgID:  orgID(r),
		Status: r.URL.Query().Get("status"),
		Stage:  r.URL.Query().Get("stage"),
	}

	applications, err := s.applicationSrv.ListApplications(r.Context(), filter)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	registry := s.contractSrv.Registry()
	out := api.ApplicationList{}
	for _, a := range applications {
		busy := registry.IsBusy(flight.KindReview, a.ID.String()) || registry.IsBusy(flight.KindCreateContract, a.ID.String())
		resolution := s.applicationSrv.ResolveActions(&a, busy)
		out = append(out, mappers.ApplicationToApi(a, resolution, s.translator))
	}

	render.JSON(w, r, out)
}

// (POST /api/v1/applications)
func (s *ServiceHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var form api.CreateApplicationRequest
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

	application, err := s.applicationSrv.CreateApplication(r.Context(), mappers.ApplicationFromApi(uuid.New(), orgID(r), &form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.applicationSrv.ResolveActions(application, false)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.ApplicationToApi(*application, resolution, s.translator))
}

// (GET /api/v1/applications/{id})
func (s *ServiceHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	application, err := s.applicationSrv.GetApplication(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	registry := s.contractSrv.Registry()
	busy := registry.IsBusy(flight.KindReview, id.String()) || registry.IsBusy(flight.KindCreateContract, id.String())
	resolution := s.applicationSrv.ResolveActions(application, busy)
	render.JSON(w, r, mappers.ApplicationToApi(*application, resolution, s.translator))
}

// (POST /api/v1/applications/{id}/review)
func (s *ServiceHandler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.ReviewApplicationRequest
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

	application, err := s.applicationSrv.ReviewApplication(r.Context(), id, outcome)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.applicationSrv.ResolveActions(application, false)
	render.JSON(w, r, mappers.ApplicationToApi(*application, resolution, s.translator))
}

// (POST /api/v1/applications/{id}/contract)
func (s *ServiceHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.CreateContractRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}
	form.ApplicationId = id

	if err := s.validateContract(&form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	contract, err := s.applicationSrv.CreateContract(r.Context(), mappers.ContractFromApi(uuid.New(), orgID(r), &form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}
