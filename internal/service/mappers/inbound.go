package mappers

import (
	"encoding/json"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
)

func ApplicationFromApi(id uuid.UUID, orgID string, resource *api.CreateApplicationRequest) model.Application {
	return model.Application{
		ID:            id,
		OrgID:         orgID,
		CandidateName: resource.CandidateName,
		Email:         resource.Email,
		Status:        string(workflow.ApplicationStatusDraft),
		Stage:         string(workflow.ApplicationStageInvited),
	}
}

func ContractFromApi(id uuid.UUID, orgID string, resource *api.CreateContractRequest) model.Contract {
	wizard, _ := json.Marshal(resource.Wizard)
	applicationID := resource.ApplicationId
	return model.Contract{
		ID:             id,
		ApplicationID:  &applicationID,
		OrgID:          orgID,
		CandidateStage: string(workflow.StageDecision),
		Wizard:         wizard,
	}
}

func WizardFormFromApi(resource api.WizardForm) completeness.WizardForm {
	return completeness.WizardForm{
		EmployeeName:     resource.EmployeeName,
		Position:         resource.Position,
		Department:       resource.Department,
		StartDate:        resource.StartDate,
		Salary:           resource.Salary,
		Duties:           resource.Duties,
		Supervisor:       resource.Supervisor,
		WorkHoursPerWeek: resource.WorkHoursPerWeek,
		WorkDays:         resource.WorkDays,
		HasBreak:         resource.HasBreak,
		BreakStartTime:   resource.BreakStartTime,
		BreakEndTime:     resource.BreakEndTime,
		TrialPeriod:      resource.TrialPeriod,
		TrialDuration:    resource.TrialDuration,
	}
}

func SectionStatusFromApi(resource *api.UpdateOnboardingSectionRequest) completeness.SectionStatus {
	return completeness.SectionStatus{
		Complete:      resource.Complete,
		MissingFields: resource.MissingFields,
		MissingFiles:  resource.MissingFiles,
	}
}
