package store

import (
	"context"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobApplication interface {
	List(ctx context.Context, filter *JobApplicationQueryFilter) (model.JobApplicationList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.JobApplication, error)
	Create(ctx context.Context, jobApplication model.JobApplication) (*model.JobApplication, error)
	Update(ctx context.Context, id uuid.UUID, stage, reviewStatus, signedPDFURL *string) (*model.JobApplication, error)
	InitialMigration(ctx context.Context) error
}

type JobApplicationStore struct {
	db *gorm.DB
}

// Make sure we conform to JobApplication interface
var _ JobApplication = (*JobApplicationStore)(nil)

func NewJobApplicationStore(db *gorm.DB) JobApplication {
	return &JobApplicationStore{db: db}
}

func (s *JobApplicationStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.JobApplication{})
}

func (s *JobApplicationStore) List(ctx context.Context, filter *JobApplicationQueryFilter) (model.JobApplicationList, error) {
	var jobApplications model.JobApplicationList
	tx := s.getDB(ctx)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&jobApplications).Order("id").Find(&jobApplications); result.Error != nil {
		return nil, result.Error
	}
	return jobApplications, nil
}

func (s *JobApplicationStore) Get(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	jobApplication := model.NewJobApplicationFromID(id)
	result := s.getDB(ctx).First(&jobApplication)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return jobApplication, nil
}

func (s *JobApplicationStore) Create(ctx context.Context, jobApplication model.JobApplication) (*model.JobApplication, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&jobApplication)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &jobApplication, nil
}

func (s *JobApplicationStore) Update(ctx context.Context, id uuid.UUID, stage, reviewStatus, signedPDFURL *string) (*model.JobApplication, error) {
	jobApplication := model.NewJobApplicationFromID(id)
	selectFields := []string{}
	if stage != nil {
		jobApplication.Stage = *stage
		selectFields = append(selectFields, "stage")
	}
	if reviewStatus != nil {
		jobApplication.ReviewStatus = reviewStatus
		selectFields = append(selectFields, "review_status")
	}
	if signedPDFURL != nil {
		jobApplication.SignedPDFURL = signedPDFURL
		selectFields = append(selectFields, "signed_pdf_url")
	}

	result := s.getDB(ctx).Model(jobApplication).Clauses(clause.Returning{}).Select(selectFields).Updates(&jobApplication)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return jobApplication, nil
}

func (s *JobApplicationStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
