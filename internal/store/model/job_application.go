package model

import (
	"encoding/json"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobApplication struct {
	gorm.Model
	ID           uuid.UUID `gorm:"primaryKey;"`
	ContractID   uuid.UUID `gorm:"index;not null"`
	Stage        string
	ReviewStatus *string
	SignedPDFURL *string
}

type JobApplicationList []JobApplication

func (j JobApplication) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

func NewJobApplicationFromID(id uuid.UUID) *JobApplication {
	return &JobApplication{ID: id}
}

func (j JobApplication) ToSnapshot() workflow.JobApplicationSnapshot {
	snapshot := workflow.JobApplicationSnapshot{
		ID:           j.ID.String(),
		Stage:        workflow.CandidateStage(j.Stage),
		SignedPDFURL: j.SignedPDFURL,
	}
	if j.ReviewStatus != nil {
		status := workflow.ReviewStatus(*j.ReviewStatus)
		snapshot.ReviewStatus = &status
	}
	return snapshot
}
