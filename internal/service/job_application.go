package service

import (
	"context"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
)

type JobApplicationService struct {
	store store.Store
}

func NewJobApplicationService(store store.Store) *JobApplicationService {
	return &JobApplicationService{store: store}
}

func (s *JobApplicationService) ListJobApplications(ctx context.Context, contractID uuid.UUID) (model.JobApplicationList, error) {
	return s.store.JobApplication().List(ctx, store.NewJobApplicationQueryFilter().ByContractID(contractID.String()))
}

func (s *JobApplicationService) GetJobApplication(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	jobApplication, err := s.store.JobApplication().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobApplicationNotFound(id)
		}
		return nil, err
	}

	return jobApplication, nil
}

// UploadSigned stores the candidate's signed job-application document and
// queues it for HR review. The parent contract follows the stage move.
func (s *JobApplicationService) UploadSigned(ctx context.Context, id uuid.UUID, signedPDFURL string) (*model.JobApplication, error) {
	jobApplication, err := s.GetJobApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.CanUploadSigned(jobApplication.ToSnapshot()) {
		return nil, NewErrInvalidTransition("job application", id, "upload")
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	stage := string(workflow.StageJobAppReview)
	result, err := s.store.JobApplication().Update(ctx, id, &stage, nil, &signedPDFURL)
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := s.store.Contract().Update(ctx, jobApplication.ContractID, store.ContractUpdate{CandidateStage: &stage}); err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// Review records the HR decision on an uploaded job application. Approval
// advances both the job application and its contract; a revision request
// or a rejection sends the document back to the candidate.
func (s *JobApplicationService) Review(ctx context.Context, id uuid.UUID, outcome workflow.ReviewStatus) (*model.JobApplication, error) {
	jobApplication, err := s.GetJobApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.IsReviewable(jobApplication.ToSnapshot()) {
		return nil, NewErrInvalidTransition("job application", id, "review")
	}

	var stage workflow.CandidateStage
	switch outcome {
	case workflow.ReviewApproved:
		stage = workflow.StageJobAppApproved
	case workflow.ReviewRevision, workflow.ReviewRejected:
		stage = workflow.StageJobAppPending
	default:
		return nil, NewErrInvalidTransition("job application", id, "review")
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	stageStr, outcomeStr := string(stage), string(outcome)
	result, err := s.store.JobApplication().Update(ctx, id, &stageStr, &outcomeStr, nil)
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := s.store.Contract().Update(ctx, jobApplication.ContractID, store.ContractUpdate{CandidateStage: &stageStr}); err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// ActionSet returns the visible control groups for the job application.
func (s *JobApplicationService) ActionSet(jobApplication *model.JobApplication) workflow.JobApplicationActionSet {
	return workflow.JobApplicationActions(workflow.CandidateStage(jobApplication.Stage))
}
