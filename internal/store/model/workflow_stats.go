package model

// WorkflowStats aggregates workflow counts for the metrics collector.
type WorkflowStats struct {
	TotalApplications         int64
	ApplicationsByStatus      map[string]int64
	ContractsByCandidateStage map[string]int64
	TotalOnboardingDrafts     int64
}

func NewWorkflowStats() WorkflowStats {
	return WorkflowStats{
		ApplicationsByStatus:      make(map[string]int64),
		ContractsByCandidateStage: make(map[string]int64),
	}
}
