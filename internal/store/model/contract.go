package model

import (
	"encoding/json"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contract struct {
	gorm.Model
	ID              uuid.UUID  `gorm:"primaryKey;"`
	ApplicationID   *uuid.UUID `gorm:"index"`
	OrgID           string     `gorm:"index;not null"`
	TrustMeStatus   *int
	CandidateStage  string
	WorkerID        *uuid.UUID
	WorkerName      *string
	OrderPDFURL     *string
	Wizard          []byte           `gorm:"type:jsonb"`
	JobApplications []JobApplication `gorm:"constraint:OnDelete:CASCADE;"`
}

type ContractList []Contract

func (c Contract) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}

func NewContractFromID(id uuid.UUID) *Contract {
	return &Contract{ID: id}
}

func (c Contract) ToSnapshot() workflow.ContractSnapshot {
	snapshot := workflow.ContractSnapshot{
		ID:             c.ID.String(),
		CandidateStage: workflow.CandidateStage(c.CandidateStage),
	}
	if c.TrustMeStatus != nil {
		status := workflow.SigningStatus(*c.TrustMeStatus)
		snapshot.TrustMeStatus = &status
	}
	if c.ApplicationID != nil {
		id := c.ApplicationID.String()
		snapshot.CandidateApplicationID = &id
	}
	if c.WorkerID != nil {
		worker := workflow.WorkerRef{ID: c.WorkerID.String()}
		if c.WorkerName != nil {
			worker.FullName = *c.WorkerName
		}
		snapshot.Worker = &worker
	}
	return snapshot
}

// ToOrderSnapshot derives the order-on-hiring view from the contract row.
func (c Contract) ToOrderSnapshot() workflow.OrderSnapshot {
	return workflow.OrderSnapshot{
		ID:           c.ID.String(),
		SignedPDFURL: c.OrderPDFURL,
	}
}
