package model

import (
	"encoding/json"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Application struct {
	gorm.Model
	ID            uuid.UUID `gorm:"primaryKey;"`
	OrgID         string    `gorm:"index;not null"`
	CandidateName string
	Email         string
	Status        string
	Stage         string
	HasContract   bool
	Contracts     []Contract `gorm:"constraint:OnDelete:CASCADE;"`
}

type ApplicationList []Application

func (a Application) String() string {
	val, _ := json.Marshal(a)
	return string(val)
}

func NewApplicationFromID(id uuid.UUID) *Application {
	return &Application{ID: id}
}

// ToSnapshot maps the row onto the workflow snapshot. Unknown status or
// stage values pass through untyped; the resolver fails closed on them.
func (a Application) ToSnapshot() workflow.ApplicationSnapshot {
	return workflow.ApplicationSnapshot{
		ID:          a.ID.String(),
		Status:      workflow.ApplicationStatus(a.Status),
		Stage:       workflow.ApplicationStage(a.Stage),
		HasContract: a.HasContract,
	}
}
