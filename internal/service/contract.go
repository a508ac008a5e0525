package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/dispatch"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service/mappers"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ContractFilter narrows the contract listing.
type ContractFilter struct {
	OrgID          string
	ApplicationID  string
	CandidateStage string
}

type ContractService struct {
	store            store.Store
	dispatcher       *dispatch.Dispatcher
	eventWriter      *events.EventProducer
	documentsBaseURL string
}

func NewContractService(store store.Store, dispatcher *dispatch.Dispatcher, eventWriter *events.EventProducer, documentsBaseURL string) *ContractService {
	return &ContractService{
		store:            store,
		dispatcher:       dispatcher,
		eventWriter:      eventWriter,
		documentsBaseURL: documentsBaseURL,
	}
}

func (s *ContractService) ListContracts(ctx context.Context, filter *ContractFilter) (model.ContractList, error) {
	storeFilter := store.NewContractQueryFilter()
	if filter != nil {
		if filter.OrgID != "" {
			storeFilter = storeFilter.ByOrgID(filter.OrgID)
		}
		if filter.ApplicationID != "" {
			storeFilter = storeFilter.ByApplicationID(filter.ApplicationID)
		}
		if filter.CandidateStage != "" {
			storeFilter = storeFilter.ByCandidateStage(filter.CandidateStage)
		}
	}

	return s.store.Contract().List(ctx, storeFilter)
}

func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.store.Contract().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrContractNotFound(id)
		}
		return nil, err
	}

	return contract, nil
}

// SubmitForSigning hands the contract draft to the signing provider. Only
// contracts never submitted before qualify; a successful hand-off moves
// the provider status to sent.
func (s *ContractService) SubmitForSigning(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.IsSignable(contract.ToSnapshot()) {
		return nil, NewErrInvalidTransition("contract", id, "submit_for_signing")
	}

	err = s.dispatcher.Dispatch(ctx, dispatch.Request{
		Kind:     flight.KindSubmitForSigning,
		EntityID: id.String(),
		Endpoint: dispatch.Endpoint{
			Method: "POST",
			Path:   fmt.Sprintf("/api/v1/documents/%s/submit", id),
			Body:   map[string]string{"contract_id": id.String()},
		},
		SuccessKey:     "contracts.notifications.submitted",
		FallbackKey:    "contracts.notifications.submitError",
		InvalidateTags: []string{"contracts"},
	})
	if err != nil {
		return nil, err
	}

	sent := int(workflow.SigningSent)
	result, err := s.store.Contract().Update(ctx, id, store.ContractUpdate{TrustMeStatus: &sent})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record signing hand-off")
	}

	s.writeContractEvent(ctx, result)
	return result, nil
}

// UpdateSigningStatus applies a signing-provider callback. A fully signed
// contract advances the candidate and opens the pending job application
// in the same transaction.
func (s *ContractService) UpdateSigningStatus(ctx context.Context, id uuid.UUID, status int) (*model.Contract, error) {
	signingStatus, ok := workflow.ParseSigningStatus(status)
	if !ok {
		return nil, NewErrInvalidTransition("contract", id, "update_signing_status")
	}

	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	update := store.ContractUpdate{TrustMeStatus: &status}
	if signingStatus == workflow.SigningSigned && contract.CandidateStage == string(workflow.StageDecision) {
		stage := string(workflow.StageContractSigned)
		update.CandidateStage = &stage
	}

	result, err := s.store.Contract().Update(ctx, id, update)
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, errors.Wrap(err, "failed to update signing status")
	}

	if update.CandidateStage != nil {
		_, err := s.store.JobApplication().Create(ctx, model.JobApplication{
			ID:         uuid.New(),
			ContractID: id,
			Stage:      string(workflow.StageJobAppPending),
		})
		if err != nil {
			_, _ = store.Rollback(ctx)
			return nil, errors.Wrap(err, "failed to open job application")
		}
	}

	ctx, err = store.Commit(ctx)
	if err != nil {
		return nil, err
	}

	s.writeContractEvent(ctx, result)
	return s.GetContract(ctx, id)
}

// CreateOrder opens the order-on-hiring once the job application has been
// approved under a fully signed contract.
func (s *ContractService) CreateOrder(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.CanCreateOrder(contract.ToSnapshot()) {
		return nil, NewErrInvalidTransition("contract", id, "create_order")
	}

	err = s.dispatcher.Dispatch(ctx, dispatch.Request{
		Kind:     flight.KindCreateOrder,
		EntityID: id.String(),
		Endpoint: dispatch.Endpoint{
			Method: "POST",
			Path:   fmt.Sprintf("/api/v1/orders?contract_id=%s", id),
		},
		SuccessKey:     "contracts.notifications.orderCreated",
		FallbackKey:    "notifications.genericError",
		InvalidateTags: []string{"contracts", "orders"},
	})
	if err != nil {
		return nil, err
	}

	stage := string(workflow.StageOrderPending)
	result, err := s.store.Contract().Update(ctx, id, store.ContractUpdate{CandidateStage: &stage})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the hiring order")
	}

	s.writeContractEvent(ctx, result)
	return result, nil
}

// UploadOrder records the signed hiring-order document.
func (s *ContractService) UploadOrder(ctx context.Context, id uuid.UUID, signedPDFURL string) (*model.Contract, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if contract.CandidateStage != string(workflow.StageOrderPending) {
		return nil, NewErrInvalidTransition("contract", id, "upload_order")
	}

	stage := string(workflow.StageOrderUploaded)
	result, err := s.store.Contract().Update(ctx, id, store.ContractUpdate{
		CandidateStage: &stage,
		OrderPDFURL:    &signedPDFURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store the signed order")
	}

	s.writeContractEvent(ctx, result)
	return result, nil
}

// CompleteHiring closes the workflow: the candidate becomes a worker, the
// contract and the application both land on completed.
func (s *ContractService) CompleteHiring(ctx context.Context, id uuid.UUID, workerFullName string) (*model.Contract, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.CanCompleteHiring(contract.ToSnapshot()) {
		return nil, NewErrInvalidTransition("contract", id, "complete_hiring")
	}

	err = s.dispatcher.Dispatch(ctx, dispatch.Request{
		Kind:     flight.KindCompleteHiring,
		EntityID: id.String(),
		Endpoint: dispatch.Endpoint{
			Method: "POST",
			Path:   fmt.Sprintf("/api/v1/workers?contract_id=%s", id),
			Body:   map[string]string{"full_name": workerFullName},
		},
		SuccessKey:     "contracts.notifications.hiringCompleted",
		FallbackKey:    "notifications.genericError",
		InvalidateTags: []string{"contracts", "applications", "workers"},
	})
	if err != nil {
		return nil, err
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	workerID := uuid.New()
	stage := string(workflow.StageCompleted)
	result, err := s.store.Contract().Update(ctx, id, store.ContractUpdate{
		CandidateStage: &stage,
		WorkerID:       &workerID,
		WorkerName:     &workerFullName,
	})
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, errors.Wrap(err, "failed to complete the contract")
	}

	if contract.ApplicationID != nil {
		appStage := string(workflow.ApplicationStageCompleted)
		if _, err := s.store.Application().Update(ctx, *contract.ApplicationID, nil, &appStage, nil); err != nil {
			_, _ = store.Rollback(ctx)
			return nil, errors.Wrap(err, "failed to complete the application")
		}
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	s.writeContractEvent(ctx, result)
	return result, nil
}

// DownloadURL builds the document link for a contract. Hired contracts
// point at the final worker PDF, drafts at the candidate document.
func (s *ContractService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return "", err
	}

	if contract.WorkerID != nil {
		return fmt.Sprintf("%s/workers/%s/contract.pdf", s.documentsBaseURL, contract.WorkerID), nil
	}
	return fmt.Sprintf("%s/contracts/%s/draft.pdf", s.documentsBaseURL, contract.ID), nil
}

// WizardProgress re-evaluates the stored wizard payload.
func (s *ContractService) WizardProgress(ctx context.Context, id uuid.UUID) (completeness.WizardProgress, error) {
	contract, err := s.GetContract(ctx, id)
	if err != nil {
		return completeness.WizardProgress{}, err
	}

	var form api.WizardForm
	if len(contract.Wizard) > 0 {
		if err := json.Unmarshal(contract.Wizard, &form); err != nil {
			zap.S().Named("contract_service").Warnw("corrupt wizard payload", "contract_id", id, "error", err)
		}
	}

	return completeness.EvaluateWizard(mappers.WizardFormFromApi(form), nil), nil
}

// ResolveActions computes the permitted actions for a contract, echoing
// the busy state supplied by the in-flight registry.
func (s *ContractService) ResolveActions(contract *model.Contract, busy bool) workflow.Resolution {
	return workflow.ResolveContractActions(contract.ToSnapshot(), busy)
}

// Registry exposes the dispatcher's in-flight tracker for busy checks.
func (s *ContractService) Registry() *flight.Registry {
	return s.dispatcher.Registry()
}

func (s *ContractService) writeContractEvent(ctx context.Context, contract *model.Contract) {
	data, err := json.Marshal(events.ContractEvent{
		ContractID:    contract.ID.String(),
		SigningStatus: contract.TrustMeStatus,
		Stage:         contract.CandidateStage,
	})
	if err != nil {
		return
	}
	if err := s.eventWriter.Write(ctx, events.ContractMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("contract_service").Errorw("failed to write event", "error", err, "event_kind", events.ContractMessageKind)
	}
}
