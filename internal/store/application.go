package store

import (
	"context"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Application interface {
	List(ctx context.Context, filter *ApplicationQueryFilter, opts *ApplicationQueryOptions) (model.ApplicationList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Create(ctx context.Context, application model.Application) (*model.Application, error)
	Update(ctx context.Context, id uuid.UUID, status, stage *string, hasContract *bool) (*model.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type ApplicationStore struct {
	db *gorm.DB
}

// Make sure we conform to Application interface
var _ Application = (*ApplicationStore)(nil)

func NewApplicationStore(db *gorm.DB) Application {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.Application{})
}

func (s *ApplicationStore) List(ctx context.Context, filter *ApplicationQueryFilter, opts *ApplicationQueryOptions) (model.ApplicationList, error) {
	var applications model.ApplicationList
	tx := s.getDB(ctx)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&applications).Find(&applications); result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (s *ApplicationStore) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	application := model.NewApplicationFromID(id)
	result := s.getDB(ctx).First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return application, nil
}

func (s *ApplicationStore) Create(ctx context.Context, application model.Application) (*model.Application, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &application, nil
}

func (s *ApplicationStore) Update(ctx context.Context, id uuid.UUID, status, stage *string, hasContract *bool) (*model.Application, error) {
	application := model.NewApplicationFromID(id)
	selectFields := []string{}
	if status != nil {
		application.Status = *status
		selectFields = append(selectFields, "status")
	}
	if stage != nil {
		application.Stage = *stage
		selectFields = append(selectFields, "stage")
	}
	if hasContract != nil {
		application.HasContract = *hasContract
		selectFields = append(selectFields, "has_contract")
	}

	result := s.getDB(ctx).Model(application).Clauses(clause.Returning{}).Select(selectFields).Updates(&application)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return application, nil
}

func (s *ApplicationStore) Delete(ctx context.Context, id uuid.UUID) error {
	application := model.NewApplicationFromID(id)
	result := s.getDB(ctx).Unscoped().Delete(&application)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (s *ApplicationStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
