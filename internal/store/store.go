package store

import (
	"context"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Application() Application
	Contract() Contract
	JobApplication() JobApplication
	Onboarding() Onboarding
	InitialMigration(ctx context.Context) error
	Statistics(ctx context.Context) (model.WorkflowStats, error)
	Close() error
}

type DataStore struct {
	db             *gorm.DB
	application    Application
	contract       Contract
	jobApplication JobApplication
	onboarding     Onboarding
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		application:    NewApplicationStore(db),
		contract:       NewContractStore(db),
		jobApplication: NewJobApplicationStore(db),
		onboarding:     NewOnboardingStore(db),
		db:             db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Application() Application {
	return s.application
}

func (s *DataStore) Contract() Contract {
	return s.contract
}

func (s *DataStore) JobApplication() JobApplication {
	return s.jobApplication
}

func (s *DataStore) Onboarding() Onboarding {
	return s.onboarding
}

func (s *DataStore) InitialMigration(ctx context.Context) error {
	if err := s.application.InitialMigration(ctx); err != nil {
		return err
	}
	if err := s.contract.InitialMigration(ctx); err != nil {
		return err
	}
	if err := s.jobApplication.InitialMigration(ctx); err != nil {
		return err
	}
	return s.onboarding.InitialMigration(ctx)
}

func (s *DataStore) Statistics(ctx context.Context) (model.WorkflowStats, error) {
	stats := model.NewWorkflowStats()

	type statusCount struct {
		Status string
		Count  int64
	}

	var byStatus []statusCount
	if err := s.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&byStatus).Error; err != nil {
		return model.WorkflowStats{}, err
	}
	for _, row := range byStatus {
		stats.ApplicationsByStatus[row.Status] = row.Count
		stats.TotalApplications += row.Count
	}

	type stageCount struct {
		CandidateStage string
		Count          int64
	}

	var byStage []stageCount
	if err := s.db.WithContext(ctx).Model(&model.Contract{}).
		Select("candidate_stage, count(*) as count").
		Group("candidate_stage").
		Find(&byStage).Error; err != nil {
		return model.WorkflowStats{}, err
	}
	for _, row := range byStage {
		stats.ContractsByCandidateStage[row.CandidateStage] = row.Count
	}

	if err := s.db.WithContext(ctx).Model(&model.OnboardingDraft{}).
		Count(&stats.TotalOnboardingDrafts).Error; err != nil {
		return model.WorkflowStats{}, err
	}

	return stats, nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
