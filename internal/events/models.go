package events

// ApplicationEvent is emitted on every candidate-application status
// transition.
type ApplicationEvent struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	Stage         string `json:"stage"`
}

// ContractEvent is emitted when a contract's signing status changes.
type ContractEvent struct {
	ContractID    string `json:"contract_id"`
	SigningStatus *int   `json:"signing_status"`
	Stage         string `json:"stage"`
}

// OnboardingEvent is emitted when an onboarding form-set is submitted.
type OnboardingEvent struct {
	Token      string `json:"token"`
	IsComplete bool   `json:"is_complete"`
}

// NotificationEvent carries a terminal user notification out of the
// action dispatcher.
type NotificationEvent struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

// InvalidationEvent tells snapshot consumers which cached tags went stale
// after a state-changing action.
type InvalidationEvent struct {
	Tags []string `json:"tags"`
}
