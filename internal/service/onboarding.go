package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flagstore"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OnboardingService struct {
	store       store.Store
	flags       flagstore.Store
	eventWriter *events.EventProducer
}

func NewOnboardingService(store store.Store, flags flagstore.Store, eventWriter *events.EventProducer) *OnboardingService {
	return &OnboardingService{store: store, flags: flags, eventWriter: eventWriter}
}

// StartOnboarding opens a draft for an invitation token. Re-invoking with
// an already known token returns the existing draft.
func (s *OnboardingService) StartOnboarding(ctx context.Context, token, orgID string) (*model.OnboardingDraft, error) {
	draft, err := s.store.Onboarding().Create(ctx, model.OnboardingDraft{
		ID:    uuid.New(),
		Token: token,
		OrgID: orgID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return s.store.Onboarding().GetByToken(ctx, token)
		}
		return nil, err
	}

	return draft, nil
}

// Progress returns the stored per-section statuses with the
// social-categories override applied, plus the steps the stepper must
// keep disabled.
func (s *OnboardingService) Progress(ctx context.Context, token string) (completeness.Progress, []completeness.SectionID, error) {
	tracker, err := s.tracker(ctx, token)
	if err != nil {
		return completeness.Progress{}, nil, err
	}

	return tracker.Progress(), tracker.DisabledSteps(), nil
}

// OpenSection records a section navigation. Only the optional
// social-categories section leaves a durable trace.
func (s *OnboardingService) OpenSection(ctx context.Context, token string, section completeness.SectionID) error {
	tracker, err := s.tracker(ctx, token)
	if err != nil {
		return err
	}

	return tracker.OpenSection(ctx, section)
}

// UpdateSection stores a fresh section status and recomputes the overall
// completion flag with the social-categories override in effect.
func (s *OnboardingService) UpdateSection(ctx context.Context, token string, section completeness.SectionID, status completeness.SectionStatus) (completeness.Progress, error) {
	draft, err := s.getDraft(ctx, token)
	if err != nil {
		return completeness.Progress{}, err
	}

	progress := draft.ToProgress()
	progress.Sections[section] = status

	tracker, err := completeness.NewOnboarding(ctx, token, s.flags)
	if err != nil {
		return completeness.Progress{}, err
	}
	tracker.Apply(progress)

	effective := tracker.Progress()
	isComplete := true
	for _, id := range completeness.OnboardingSections {
		if !effective.Sections[id].Complete {
			isComplete = false
			break
		}
	}

	updated, err := s.store.Onboarding().Update(ctx, token, model.MakeSectionsField(progress.Sections), &isComplete)
	if err != nil {
		return completeness.Progress{}, err
	}

	tracker.Apply(updated.ToProgress())
	return tracker.Progress(), nil
}

// Submit finalizes the onboarding form-set. Every section must be
// complete, the optional social-categories section counting as complete
// once it has ever been opened.
func (s *OnboardingService) Submit(ctx context.Context, token string) (*model.OnboardingDraft, error) {
	tracker, err := s.tracker(ctx, token)
	if err != nil {
		return nil, err
	}

	progress := tracker.Progress()
	missing := []string{}
	for _, id := range completeness.OnboardingSections {
		if !progress.Sections[id].Complete {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return nil, NewErrOnboardingIncomplete(token, missing)
	}

	isComplete := true
	draft, err := s.store.Onboarding().Update(ctx, token, nil, &isComplete)
	if err != nil {
		return nil, err
	}

	s.writeOnboardingEvent(ctx, draft)
	return draft, nil
}

func (s *OnboardingService) getDraft(ctx context.Context, token string) (*model.OnboardingDraft, error) {
	draft, err := s.store.Onboarding().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrOnboardingNotFound(token)
		}
		return nil, err
	}
	return draft, nil
}

func (s *OnboardingService) tracker(ctx context.Context, token string) (*completeness.Onboarding, error) {
	draft, err := s.getDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	tracker, err := completeness.NewOnboarding(ctx, token, s.flags)
	if err != nil {
		return nil, err
	}
	tracker.Apply(draft.ToProgress())

	return tracker, nil
}

func (s *OnboardingService) writeOnboardingEvent(ctx context.Context, draft *model.OnboardingDraft) {
	data, err := json.Marshal(events.OnboardingEvent{
		Token:      draft.Token,
		IsComplete: draft.IsComplete,
	})
	if err != nil {
		return
	}
	if err := s.eventWriter.Write(ctx, events.OnboardingMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("onboarding_service").Errorw("failed to write event", "error", err, "event_kind", events.OnboardingMessageKind)
	}
}
