package workflow

// WorkerRef points at the worker record created once a candidate is hired.
// Contracts that already have a worker behind them download as a final PDF;
// pre-hiring contracts still offer the draft document.
type WorkerRef struct {
	ID       string
	FullName string
}

// ApplicationSnapshot is a point-in-time copy of a candidate hiring
// application as last read from the store. It is replaced wholesale on
// refetch, never patched field by field.
type ApplicationSnapshot struct {
	ID          string
	Status      ApplicationStatus
	Stage       ApplicationStage
	HasContract bool
}

// JobApplicationSnapshot is the job-application nested under a contract.
type JobApplicationSnapshot struct {
	ID           string
	Stage        CandidateStage
	ReviewStatus *ReviewStatus
	SignedPDFURL *string
}

// ContractSnapshot is a point-in-time copy of an employment contract.
// TrustMeStatus is nil while the contract is a draft that was never
// submitted to the signing provider.
type ContractSnapshot struct {
	ID                     string
	TrustMeStatus          *SigningStatus
	CandidateApplicationID *string
	CandidateStage         CandidateStage
	Worker                 *WorkerRef
}

// OrderSnapshot is the order-on-hiring view. The server does not type the
// order with its own stage enum; the effective stage is derived from the
// presence of a signed PDF.
type OrderSnapshot struct {
	ID           string
	SignedPDFURL *string
}

// IsSignable reports whether the contract may be submitted for signing.
func IsSignable(c ContractSnapshot) bool {
	return c.TrustMeStatus == nil
}

// IsSigned reports whether the signing provider marked the contract as
// fully signed by all parties.
func IsSigned(c ContractSnapshot) bool {
	return c.TrustMeStatus != nil && *c.TrustMeStatus == SigningSigned
}

// CanCreateOrder gates the order-on-hiring creation. It requires a fully
// signed contract linked to a candidate application whose job application
// has been approved.
func CanCreateOrder(c ContractSnapshot) bool {
	return IsSigned(c) && c.CandidateApplicationID != nil && c.CandidateStage == StageJobAppApproved
}

// CanCompleteHiring gates the final hiring step, available once the signed
// order has been uploaded.
func CanCompleteHiring(c ContractSnapshot) bool {
	return IsSigned(c) && c.CandidateApplicationID != nil && c.CandidateStage == StageOrderUploaded
}

// IsReviewable reports whether the uploaded job application is waiting for
// an HR decision.
func IsReviewable(j JobApplicationSnapshot) bool {
	return j.Stage == StageJobAppReview
}

// CanUploadSigned reports whether the candidate may upload the signed
// job-application document.
func CanUploadSigned(j JobApplicationSnapshot) bool {
	return j.Stage == StageContractSigned || j.Stage == StageJobAppPending
}

// IsUnderReview reports whether the hiring application offers the
// approve/revision/reject decision set.
func IsUnderReview(a ApplicationSnapshot) bool {
	return a.Status == ApplicationStatusSubmitted
}

// CanCreateContract is true only for approved applications that do not
// have a contract yet.
func CanCreateContract(a ApplicationSnapshot) bool {
	return a.Status == ApplicationStatusApproved && !a.HasContract
}

// EffectiveOrderStage derives the order stage from the uploaded document.
// The derived value drives display-only state; action gating follows the
// contract-level CandidateStage.
func EffectiveOrderStage(o OrderSnapshot) CandidateStage {
	if o.SignedPDFURL != nil && *o.SignedPDFURL != "" {
		return StageOrderUploaded
	}
	return StageOrderPending
}
