// Package workflow defines the finite stage/status sets of the hiring
// lifecycle and the guard predicates deciding which user action is valid
// for a given entity snapshot.
//
// Candidate stage graph (contract track):
//
//	decision ──► contract_signed ──► job_app_pending ──► job_app_review
//	                    │                   ▲                  │
//	                    └───────────────────┴── revision ◄─────┤
//	                                                           ▼
//	         completed ◄── order_uploaded ◄── order_pending ◄── job_app_approved
//
// Unknown values never panic: every predicate fails closed.
package workflow

// ApplicationStatus is the coarse server-reported status of a candidate
// hiring application.
type ApplicationStatus string

const (
	ApplicationStatusDraft             ApplicationStatus = "draft"
	ApplicationStatusSubmitted         ApplicationStatus = "submitted"
	ApplicationStatusRevisionRequested ApplicationStatus = "revision_requested"
	ApplicationStatusApproved          ApplicationStatus = "approved"
	ApplicationStatusRejected          ApplicationStatus = "rejected"
)

// ApplicationStage is the finer-grained workflow position of a candidate
// hiring application.
type ApplicationStage string

const (
	ApplicationStageInvited   ApplicationStage = "invited"
	ApplicationStageFilling   ApplicationStage = "filling"
	ApplicationStageReview    ApplicationStage = "review"
	ApplicationStageDecision  ApplicationStage = "decision"
	ApplicationStageCompleted ApplicationStage = "completed"
)

// CandidateStage tracks a candidate through the contract, job-application
// and hiring-order steps. It lives on the parent contract and is
// authoritative for action gating.
type CandidateStage string

const (
	StageDecision       CandidateStage = "decision"
	StageContractSigned CandidateStage = "contract_signed"
	StageJobAppPending  CandidateStage = "job_app_pending"
	StageJobAppReview   CandidateStage = "job_app_review"
	StageJobAppApproved CandidateStage = "job_app_approved"
	StageOrderPending   CandidateStage = "order_pending"
	StageOrderUploaded  CandidateStage = "order_uploaded"
	StageCompleted      CandidateStage = "completed"
)

// ReviewStatus is the outcome of a job-application review.
type ReviewStatus string

const (
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
	ReviewRevision ReviewStatus = "revision"
)

// SigningStatus mirrors the e-sign provider's document state (0-9). A nil
// *SigningStatus means the contract is still a draft and was never sent.
type SigningStatus int

const (
	SigningCreated       SigningStatus = 0
	SigningSent          SigningStatus = 1
	SigningPartiallyDone SigningStatus = 2
	SigningSigned        SigningStatus = 3
	SigningDeclined      SigningStatus = 4
	SigningExpired       SigningStatus = 5
	SigningRevoked       SigningStatus = 6
	SigningError         SigningStatus = 7
	SigningArchived      SigningStatus = 8
	SigningDeleted       SigningStatus = 9
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationStatusDraft, ApplicationStatusSubmitted, ApplicationStatusRevisionRequested,
		ApplicationStatusApproved, ApplicationStatusRejected:
		return st, true
	}
	return "", false
}

func ParseApplicationStage(s string) (ApplicationStage, bool) {
	st := ApplicationStage(s)
	switch st {
	case ApplicationStageInvited, ApplicationStageFilling, ApplicationStageReview,
		ApplicationStageDecision, ApplicationStageCompleted:
		return st, true
	}
	return "", false
}

func ParseCandidateStage(s string) (CandidateStage, bool) {
	st := CandidateStage(s)
	switch st {
	case StageDecision, StageContractSigned, StageJobAppPending, StageJobAppReview,
		StageJobAppApproved, StageOrderPending, StageOrderUploaded, StageCompleted:
		return st, true
	}
	return "", false
}

func ParseReviewStatus(s string) (ReviewStatus, bool) {
	st := ReviewStatus(s)
	switch st {
	case ReviewApproved, ReviewRejected, ReviewRevision:
		return st, true
	}
	return "", false
}

func ParseSigningStatus(v int) (SigningStatus, bool) {
	if v < int(SigningCreated) || v > int(SigningDeleted) {
		return 0, false
	}
	return SigningStatus(v), true
}
