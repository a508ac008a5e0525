// Package v1alpha1 exposes the workflow over HTTP. Handlers decode and
// validate request forms, delegate to the services and translate typed
// service errors into status codes.
package v1alpha1

import (
	"net/http"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/dispatch"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/handlers/validator"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/i18n"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// orgIDHeader carries the caller's organization. The gateway in front of
// this service authenticates the user; the header is trusted here.
const orgIDHeader = "X-Org-ID"

type ServiceHandler struct {
	applicationSrv    *service.ApplicationService
	contractSrv       *service.ContractService
	jobApplicationSrv *service.JobApplicationService
	onboardingSrv     *service.OnboardingService
	translator        i18n.Translator

	baseValidator       *validator.Validator
	contractValidator   *validator.Validator
	onboardingValidator *validator.Validator
}

func NewServiceHandler(
	applicationSrv *service.ApplicationService,
	contractSrv *service.ContractService,
	jobApplicationSrv *service.JobApplicationService,
	onboardingSrv *service.OnboardingService,
	translator i18n.Translator,
) *ServiceHandler {
	contractValidator := validator.NewValidator()
	contractValidator.Register(validator.NewContractValidationRules()...)
	onboardingValidator := validator.NewValidator()
	onboardingValidator.Register(validator.NewOnboardingValidationRules()...)

	return &ServiceHandler{
		applicationSrv:      applicationSrv,
		contractSrv:         contractSrv,
		jobApplicationSrv:   jobApplicationSrv,
		onboardingSrv:       onboardingSrv,
		translator:          translator,
		baseValidator:       validator.NewValidator(),
		contractValidator:   contractValidator,
		onboardingValidator: onboardingValidator,
	}
}

func (s *ServiceHandler) validate(form any, rules *validator.Validator) error {
	if err := rules.Struct(form); err != nil {
		return validator.NewErrInvalidForm("invalid form: %v", err)
	}
	return nil
}

func (s *ServiceHandler) validateContract(form any) error {
	return s.validate(form, s.contractValidator)
}

func (s *ServiceHandler) validateOnboarding(form any) error {
	return s.validate(form, s.onboardingValidator)
}

func (s *ServiceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/applications", func(r chi.Router) {
			r.Get("/", s.ListApplications)
			r.Post("/", s.CreateApplication)
			r.Get("/{id}", s.GetApplication)
			r.Post("/{id}/review", s.ReviewApplication)
			r.Post("/{id}/contract", s.CreateContract)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", s.ListContracts)
			r.Get("/{id}", s.GetContract)
			r.Get("/{id}/download", s.DownloadContract)
			r.Get("/{id}/wizard", s.GetWizardProgress)
			r.Post("/{id}/submit-for-signing", s.SubmitForSigning)
			r.Post("/{id}/signing-status", s.UpdateSigningStatus)
			r.Post("/{id}/order", s.CreateOrder)
			r.Post("/{id}/order/upload", s.UploadOrder)
			r.Post("/{id}/complete-hiring", s.CompleteHiring)
		})
		r.Route("/job-applications", func(r chi.Router) {
			r.Get("/", s.ListJobApplications)
			r.Get("/{id}", s.GetJobApplication)
			r.Post("/{id}/upload", s.UploadJobApplication)
			r.Post("/{id}/review", s.ReviewJobApplication)
		})
		r.Route("/onboarding", func(r chi.Router) {
			r.Post("/", s.StartOnboarding)
			r.Get("/{token}", s.GetOnboardingProgress)
			r.Post("/{token}/open-section", s.OpenOnboardingSection)
			r.Put("/{token}/section", s.UpdateOnboardingSection)
			r.Post("/{token}/submit", s.SubmitOnboarding)
		})
	})
	r.Get("/health", s.Health)
}

func (s *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, api.Health{Status: "ok"})
}

func orgID(r *http.Request) string {
	return r.Header.Get(orgIDHeader)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: "invalid id"})
		return uuid.UUID{}, false
	}
	return id, true
}

// renderServiceError maps typed service errors onto HTTP status codes.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *service.ErrResourceNotFound, *service.ErrOnboardingNotFound:
		status = http.StatusNotFound
	case *service.ErrInvalidTransition, *service.ErrContractAlreadyExists, *service.ErrOnboardingIncomplete:
		status = http.StatusConflict
	case *dispatch.ErrMissingEntity:
		status = http.StatusBadRequest
	case *dispatch.CallError:
		status = http.StatusBadGateway
	}

	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: err.Error()})
}
