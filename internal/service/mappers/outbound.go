package mappers

import (
	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/i18n"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
)

func ActionsToApi(resolution workflow.Resolution, translator i18n.Translator) []api.Action {
	actions := make([]api.Action, 0, len(resolution.Actions))
	for _, a := range resolution.Actions {
		actions = append(actions, api.Action{
			Id:      string(a.ID),
			Label:   translator.T(a.Label),
			Variant: a.Variant,
			Icon:    a.Icon,
		})
	}
	return actions
}

func ApplicationToApi(a model.Application, resolution workflow.Resolution, translator i18n.Translator) api.Application {
	return api.Application{
		Id:            a.ID,
		OrgId:         a.OrgID,
		CandidateName: a.CandidateName,
		Email:         a.Email,
		Status:        a.Status,
		Stage:         a.Stage,
		HasContract:   a.HasContract,
		Actions:       ActionsToApi(resolution, translator),
		Busy:          resolution.Busy,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ContractToApi(c model.Contract, resolution workflow.Resolution, translator i18n.Translator) api.Contract {
	contract := api.Contract{
		Id:             c.ID,
		ApplicationId:  c.ApplicationID,
		OrgId:          c.OrgID,
		SigningStatus:  c.TrustMeStatus,
		CandidateStage: c.CandidateStage,
		OrderPdfUrl:    c.OrderPDFURL,
		OrderStage:     string(workflow.EffectiveOrderStage(c.ToOrderSnapshot())),
		Actions:        ActionsToApi(resolution, translator),
		Busy:           resolution.Busy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.WorkerID != nil {
		worker := api.Worker{Id: c.WorkerID.String()}
		if c.WorkerName != nil {
			worker.FullName = *c.WorkerName
		}
		contract.Worker = &worker
	}
	for _, j := range c.JobApplications {
		contract.JobApplications = append(contract.JobApplications, JobApplicationToApi(j))
	}
	return contract
}

func JobApplicationToApi(j model.JobApplication) api.JobApplication {
	actionSet := workflow.JobApplicationActions(workflow.CandidateStage(j.Stage))
	return api.JobApplication{
		Id:                 j.ID,
		ContractId:         j.ContractID,
		Stage:              j.Stage,
		ReviewStatus:       j.ReviewStatus,
		SignedPdfUrl:       j.SignedPDFURL,
		ShowDownloadButton: actionSet.ShowDownloadButton,
		ShowUploadButton:   actionSet.ShowUploadButton,
		ShowReviewButtons:  actionSet.ShowReviewButtons,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func ProgressToApi(token string, progress completeness.Progress, disabled []completeness.SectionID) api.OnboardingProgress {
	out := api.OnboardingProgress{
		Token:         token,
		Sections:      make(map[string]api.SectionStatus, len(progress.Sections)),
		IsComplete:    progress.IsComplete,
		DisabledSteps: make([]string, 0, len(disabled)),
	}
	for id, status := range progress.Sections {
		out.Sections[string(id)] = api.SectionStatus{
			Complete:      status.Complete,
			MissingFields: status.MissingFields,
			MissingFiles:  status.MissingFiles,
		}
	}
	for _, id := range disabled {
		out.DisabledSteps = append(out.DisabledSteps, string(id))
	}
	return out
}

func WizardProgressToApi(progress completeness.WizardProgress) api.WizardProgress {
	out := api.WizardProgress{
		Sections: make(map[string]api.SectionStatus, len(progress.Sections)),
		Complete: progress.Complete,
	}
	for id, status := range progress.Sections {
		out.Sections[string(id)] = api.SectionStatus{
			Complete:      status.Complete,
			MissingFields: status.MissingFields,
			MissingFiles:  status.MissingFiles,
		}
	}
	return out
}
