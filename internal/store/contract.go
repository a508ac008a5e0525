package store

import (
	"context"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContractUpdate carries the selective fields of a contract update.
// Nil fields stay untouched.
type ContractUpdate struct {
	TrustMeStatus  *int
	CandidateStage *string
	WorkerID       *uuid.UUID
	WorkerName     *string
	OrderPDFURL    *string
	Wizard         []byte
}

type Contract interface {
	List(ctx context.Context, filter *ContractQueryFilter) (model.ContractList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	Create(ctx context.Context, contract model.Contract) (*model.Contract, error)
	Update(ctx context.Context, id uuid.UUID, update ContractUpdate) (*model.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type ContractStore struct {
	db *gorm.DB
}

// Make sure we conform to Contract interface
var _ Contract = (*ContractStore)(nil)

func NewContractStore(db *gorm.DB) Contract {
	return &ContractStore{db: db}
}

func (s *ContractStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.Contract{})
}

func (s *ContractStore) List(ctx context.Context, filter *ContractQueryFilter) (model.ContractList, error) {
	var contracts model.ContractList
	tx := s.getDB(ctx)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&contracts).Order("id").Find(&contracts); result.Error != nil {
		return nil, result.Error
	}
	return contracts, nil
}

func (s *ContractStore) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract := model.NewContractFromID(id)
	result := s.getDB(ctx).Preload("JobApplications", func(db *gorm.DB) *gorm.DB {
		return db.Order("job_applications.created_at ASC")
	}).First(&contract)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return contract, nil
}

func (s *ContractStore) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&contract)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &contract, nil
}

func (s *ContractStore) Update(ctx context.Context, id uuid.UUID, update ContractUpdate) (*model.Contract, error) {
	contract := model.NewContractFromID(id)
	selectFields := []string{}
	if update.TrustMeStatus != nil {
		contract.TrustMeStatus = update.TrustMeStatus
		selectFields = append(selectFields, "trust_me_status")
	}
	if update.CandidateStage != nil {
		contract.CandidateStage = *update.CandidateStage
		selectFields = append(selectFields, "candidate_stage")
	}
	if update.WorkerID != nil {
		contract.WorkerID = update.WorkerID
		selectFields = append(selectFields, "worker_id")
	}
	if update.WorkerName != nil {
		contract.WorkerName = update.WorkerName
		selectFields = append(selectFields, "worker_name")
	}
	if update.OrderPDFURL != nil {
		contract.OrderPDFURL = update.OrderPDFURL
		selectFields = append(selectFields, "order_pdf_url")
	}
	if update.Wizard != nil {
		contract.Wizard = update.Wizard
		selectFields = append(selectFields, "wizard")
	}

	result := s.getDB(ctx).Model(contract).Clauses(clause.Returning{}).Select(selectFields).Updates(&contract)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return contract, nil
}

func (s *ContractStore) Delete(ctx context.Context, id uuid.UUID) error {
	contract := model.NewContractFromID(id)
	result := s.getDB(ctx).Unscoped().Delete(&contract)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (s *ContractStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
