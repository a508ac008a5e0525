package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplicationFilter narrows the application listing.
type ApplicationFilter struct {
	OrgID  string
	Status string
	Stage  string
}

type ApplicationService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewApplicationService(store store.Store, eventWriter *events.EventProducer) *ApplicationService {
	return &ApplicationService{store: store, eventWriter: eventWriter}
}

func (s *ApplicationService) ListApplications(ctx context.Context, filter *ApplicationFilter) (model.ApplicationList, error) {
	storeFilter := store.NewApplicationQueryFilter()
	if filter != nil {
		if filter.OrgID != "" {
			storeFilter = storeFilter.ByOrgID(filter.OrgID)
		}
		if filter.Status != "" {
			storeFilter = storeFilter.ByStatus(filter.Status)
		}
		if filter.Stage != "" {
			storeFilter = storeFilter.ByStage(filter.Stage)
		}
	}

	return s.store.Application().List(ctx, storeFilter, store.NewApplicationQueryOptions())
}

func (s *ApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	application, err := s.store.Application().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}

	return application, nil
}

func (s *ApplicationService) CreateApplication(ctx context.Context, application model.Application) (*model.Application, error) {
	result, err := s.store.Application().Create(ctx, application)
	if err != nil {
		return nil, err
	}

	s.writeApplicationEvent(ctx, result)
	return result, nil
}

// ReviewApplication records the HR decision for a submitted application.
// Approval moves the candidate to the decision stage, a revision request
// sends the form back to the candidate, a rejection is terminal.
func (s *ApplicationService) ReviewApplication(ctx context.Context, id uuid.UUID, outcome workflow.ReviewStatus) (*model.Application, error) {
	application, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.IsUnderReview(application.ToSnapshot()) {
		return nil, NewErrInvalidTransition("application", id, "review")
	}

	var status workflow.ApplicationStatus
	var stage workflow.ApplicationStage
	switch outcome {
	case workflow.ReviewApproved:
		status, stage = workflow.ApplicationStatusApproved, workflow.ApplicationStageDecision
	case workflow.ReviewRevision:
		status, stage = workflow.ApplicationStatusRevisionRequested, workflow.ApplicationStageFilling
	case workflow.ReviewRejected:
		status, stage = workflow.ApplicationStatusRejected, workflow.ApplicationStageDecision
	default:
		return nil, NewErrInvalidTransition("application", id, "review")
	}

	statusStr, stageStr := string(status), string(stage)
	result, err := s.store.Application().Update(ctx, id, &statusStr, &stageStr, nil)
	if err != nil {
		return nil, err
	}

	s.writeApplicationEvent(ctx, result)
	return result, nil
}

// CreateContract opens a contract draft for an approved application. The
// contract row and the application's has_contract flag move in one
// transaction so a second draft can never slip in between.
func (s *ApplicationService) CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	if contract.ApplicationID == nil {
		return nil, NewErrInvalidTransition("contract", contract.ID, "create_contract")
	}
	applicationID := *contract.ApplicationID

	application, err := s.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	snapshot := application.ToSnapshot()
	if application.HasContract {
		return nil, NewErrContractAlreadyExists(applicationID)
	}
	if !workflow.CanCreateContract(snapshot) {
		return nil, NewErrInvalidTransition("application", applicationID, "create_contract")
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.store.Contract().Create(ctx, contract)
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	hasContract := true
	if _, err := s.store.Application().Update(ctx, applicationID, nil, nil, &hasContract); err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	s.writeContractEvent(ctx, result)
	return result, nil
}

// ResolveActions computes the permitted actions for an application,
// echoing the busy state of the pending review slot.
func (s *ApplicationService) ResolveActions(application *model.Application, busy bool) workflow.Resolution {
	return workflow.ResolveApplicationActions(application.ToSnapshot(), busy)
}

func (s *ApplicationService) writeApplicationEvent(ctx context.Context, application *model.Application) {
	data, err := json.Marshal(events.ApplicationEvent{
		ApplicationID: application.ID.String(),
		Status:        application.Status,
		Stage:         application.Stage,
	})
	if err != nil {
		return
	}
	if err := s.eventWriter.Write(ctx, events.ApplicationMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("application_service").Errorw("failed to write event", "error", err, "event_kind", events.ApplicationMessageKind)
	}
}

func (s *ApplicationService) writeContractEvent(ctx context.Context, contract *model.Contract) {
	data, err := json.Marshal(events.ContractEvent{
		ContractID:    contract.ID.String(),
		SigningStatus: contract.TrustMeStatus,
		Stage:         contract.CandidateStage,
	})
	if err != nil {
		return
	}
	if err := s.eventWriter.Write(ctx, events.ContractMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("application_service").Errorw("failed to write event", "error", err, "event_kind", events.ContractMessageKind)
	}
}
