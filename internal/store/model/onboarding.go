package model

import (
	"encoding/json"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingDraft holds the server-authoritative completion state of one
// onboarding form-set, keyed by the invitation token handed to the
// candidate.
type OnboardingDraft struct {
	gorm.Model
	ID         uuid.UUID `gorm:"primaryKey;"`
	Token      string    `gorm:"uniqueIndex;not null"`
	OrgID      string    `gorm:"index"`
	Sections   []byte    `gorm:"type:jsonb"`
	IsComplete bool
}

type OnboardingDraftList []OnboardingDraft

func (o OnboardingDraft) String() string {
	val, _ := json.Marshal(o)
	return string(val)
}

// ToProgress decodes the stored section statuses. A missing or corrupt
// payload degrades to empty statuses rather than failing the read.
func (o OnboardingDraft) ToProgress() completeness.Progress {
	progress := completeness.Progress{
		Sections:   make(map[completeness.SectionID]completeness.SectionStatus, len(completeness.OnboardingSections)),
		IsComplete: o.IsComplete,
	}
	for _, s := range completeness.OnboardingSections {
		progress.Sections[s] = completeness.SectionStatus{}
	}
	if len(o.Sections) > 0 {
		var stored map[completeness.SectionID]completeness.SectionStatus
		if err := json.Unmarshal(o.Sections, &stored); err == nil {
			for id, status := range stored {
				progress.Sections[id] = status
			}
		}
	}
	return progress
}

// MakeSectionsField encodes section statuses for the jsonb column.
func MakeSectionsField(sections map[completeness.SectionID]completeness.SectionStatus) []byte {
	data, _ := json.Marshal(sections)
	return data
}
