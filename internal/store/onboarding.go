package store

import (
	"context"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Onboarding interface {
	GetByToken(ctx context.Context, token string) (*model.OnboardingDraft, error)
	Create(ctx context.Context, draft model.OnboardingDraft) (*model.OnboardingDraft, error)
	Update(ctx context.Context, token string, sections []byte, isComplete *bool) (*model.OnboardingDraft, error)
	InitialMigration(ctx context.Context) error
}

type OnboardingStore struct {
	db *gorm.DB
}

// Make sure we conform to Onboarding interface
var _ Onboarding = (*OnboardingStore)(nil)

func NewOnboardingStore(db *gorm.DB) Onboarding {
	return &OnboardingStore{db: db}
}

func (s *OnboardingStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.OnboardingDraft{})
}

func (s *OnboardingStore) GetByToken(ctx context.Context, token string) (*model.OnboardingDraft, error) {
	var draft model.OnboardingDraft
	result := s.getDB(ctx).Where("token = ?", token).First(&draft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &draft, nil
}

func (s *OnboardingStore) Create(ctx context.Context, draft model.OnboardingDraft) (*model.OnboardingDraft, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&draft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &draft, nil
}

func (s *OnboardingStore) Update(ctx context.Context, token string, sections []byte, isComplete *bool) (*model.OnboardingDraft, error) {
	draft, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	selectFields := []string{}
	if sections != nil {
		draft.Sections = sections
		selectFields = append(selectFields, "sections")
	}
	if isComplete != nil {
		draft.IsComplete = *isComplete
		selectFields = append(selectFields, "is_complete")
	}

	result := s.getDB(ctx).Model(draft).Clauses(clause.Returning{}).Select(selectFields).Updates(&draft)
	if result.Error != nil {
		return nil, result.Error
	}

	return draft, nil
}

func (s *OnboardingStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
