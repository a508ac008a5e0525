package v1alpha1

import (
	"net/http"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service/mappers"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// contractBusy reports whether any long-running operation is in flight
// for the given contract.
func contractBusy(registry *flight.Registry, id uuid.UUID) bool {
	key := id.String()
	return registry.IsBusy(flight.KindSubmitForSigning, key) ||
		registry.IsBusy(flight.KindCreateOrder, key) ||
		registry.IsBusy(flight.KindCompleteHiring, key)
}

// (GET /api/v1/contracts)
func (s *ServiceHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	filter := &service.ContractFilter{
		OrgID:          orgID(r),
		ApplicationID:  r.URL.Query().Get("application_id"),
		CandidateStage: r.URL.Query().Get("stage"),
	}

	contracts, err := s.contractSrv.ListContracts(r.Context(), filter)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	registry := s.contractSrv.Registry()
	out := api.ContractList{}
	for _, c := range contracts {
		busy := contractBusy(registry, c.ID)
		resolution := s.contractSrv.ResolveActions(&c, busy)
		out = append(out, mappers.ContractToApi(c, resolution, s.translator))
	}

	render.JSON(w, r, out)
}

// (GET /api/v1/contracts/{id})
func (s *ServiceHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	contract, err := s.contractSrv.GetContract(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	busy := contractBusy(s.contractSrv.Registry(), id)
	resolution := s.contractSrv.ResolveActions(contract, busy)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}

// (GET /api/v1/contracts/{id}/download)
func (s *ServiceHandler) DownloadContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	url, err := s.contractSrv.DownloadURL(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, api.DownloadLink{Url: url})
}

// (GET /api/v1/contracts/{id}/wizard)
func (s *ServiceHandler) GetWizardProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	progress, err := s.contractSrv.WizardProgress(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.WizardProgressToApi(progress))
}

// (POST /api/v1/contracts/{id}/submit-for-signing)
func (s *ServiceHandler) SubmitForSigning(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	contract, err := s.contractSrv.SubmitForSigning(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}

// (POST /api/v1/contracts/{id}/signing-status)
func (s *ServiceHandler) UpdateSigningStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.UpdateSigningStatusRequest
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

	contract, err := s.contractSrv.UpdateSigningStatus(r.Context(), id, form.Status)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}

// (POST /api/v1/contracts/{id}/order)
func (s *ServiceHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	contract, err := s.contractSrv.CreateOrder(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}

// (POST /api/v1/contracts/{id}/order/upload)
func (s *ServiceHandler) UploadOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.UploadOrderRequest
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

	contract, err := s.contractSrv.UploadOrder(r.Context(), id, form.SignedPdfUrl)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}

// (POST /api/v1/contracts/{id}/complete-hiring)
func (s *ServiceHandler) CompleteHiring(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var form api.CompleteHiringRequest
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

	contract, err := s.contractSrv.CompleteHiring(r.Context(), id, form.WorkerFullName)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	resolution := s.contractSrv.ResolveActions(contract, false)
	render.JSON(w, r, mappers.ContractToApi(*contract, resolution, s.translator))
}
