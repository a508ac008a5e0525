package v1alpha1

import (
	"net/http"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service/mappers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// (POST /api/v1/onboarding)
func (s *ServiceHandler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	var form api.StartOnboardingRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}

	if err := s.validateOnboarding(&form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	draft, err := s.onboardingSrv.StartOnboarding(r.Context(), form.Token, orgID(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	s.renderProgress(w, r, draft.Token)
}

// (GET /api/v1/onboarding/{token})
func (s *ServiceHandler) GetOnboardingProgress(w http.ResponseWriter, r *http.Request) {
	s.renderProgress(w, r, chi.URLParam(r, "token"))
}

// (POST /api/v1/onboarding/{token}/open-section)
func (s *ServiceHandler) OpenOnboardingSection(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var form api.OpenOnboardingSectionRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}

	if err := s.validateOnboarding(&form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	if err := s.onboardingSrv.OpenSection(r.Context(), token, completeness.SectionID(form.Section)); err != nil {
		renderServiceError(w, r, err)
		return
	}

	s.renderProgress(w, r, token)
}

// (PUT /api/v1/onboarding/{token}/section)
func (s *ServiceHandler) UpdateOnboardingSection(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var form api.UpdateOnboardingSectionRequest
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid body"})
		return
	}

	if err := s.validateOnboarding(&form); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error()})
		return
	}

	_, err := s.onboardingSrv.UpdateSection(r.Context(), token, completeness.SectionID(form.Section), mappers.SectionStatusFromApi(&form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	s.renderProgress(w, r, token)
}

// (POST /api/v1/onboarding/{token}/submit)
func (s *ServiceHandler) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if _, err := s.onboardingSrv.Submit(r.Context(), token); err != nil {
		renderServiceError(w, r, err)
		return
	}

	s.renderProgress(w, r, token)
}

func (s *ServiceHandler) renderProgress(w http.ResponseWriter, r *http.Request, token string) {
	progress, disabled, err := s.onboardingSrv.Progress(r.Context(), token)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.ProgressToApi(token, progress, disabled))
}
