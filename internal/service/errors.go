package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrApplicationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "application")
}

func NewErrContractNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "contract")
}

func NewErrJobApplicationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job application")
}

type ErrOnboardingNotFound struct {
	error
}

func NewErrOnboardingNotFound(token string) *ErrOnboardingNotFound {
	return &ErrOnboardingNotFound{fmt.Errorf("onboarding draft for token %q not found", token)}
}

// ErrInvalidTransition is returned when an action is requested for an
// entity whose current stage or status does not permit it.
type ErrInvalidTransition struct {
	error
}

func NewErrInvalidTransition(resourceType string, id uuid.UUID, action string) *ErrInvalidTransition {
	return &ErrInvalidTransition{fmt.Errorf("%s %s does not allow %s in its current stage", resourceType, id, action)}
}

type ErrContractAlreadyExists struct {
	error
}

func NewErrContractAlreadyExists(applicationID uuid.UUID) *ErrContractAlreadyExists {
	return &ErrContractAlreadyExists{fmt.Errorf("application %s already has a contract", applicationID)}
}

type ErrOnboardingIncomplete struct {
	error
}

func NewErrOnboardingIncomplete(token string, sections []string) *ErrOnboardingIncomplete {
	return &ErrOnboardingIncomplete{fmt.Errorf("onboarding for token %q has incomplete sections: %v", token, sections)}
}
