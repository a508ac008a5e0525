package workflow

import "github.com/thoas/go-funk"

// ActionID identifies one user action resolvable for an entity state.
type ActionID string

const (
	ActionSubmitForSigning    ActionID = "submit_for_signing"
	ActionCreateOrder         ActionID = "create_order"
	ActionCompleteHiring      ActionID = "complete_hiring"
	ActionDownloadContract    ActionID = "download_contract"
	ActionDownloadContractPDF ActionID = "download_contract_pdf"
	ActionUploadOrder         ActionID = "upload_order"
	ActionDownloadOrder       ActionID = "download_order"
	ActionApprove             ActionID = "approve"
	ActionRequestRevision     ActionID = "request_revision"
	ActionReject              ActionID = "reject"
	ActionCreateContract      ActionID = "create_contract"
	ActionViewDetails         ActionID = "view_details"
)

// Action is a renderable descriptor of a permitted user action. Label is
// an opaque message key resolved by the localization collaborator.
type Action struct {
	ID      ActionID `json:"id"`
	Label   string   `json:"label"`
	Variant string   `json:"variant"`
	Icon    string   `json:"icon"`
}

// Resolution is the ordered action list for one entity plus the busy flag
// echoed back. Availability is a function of state only; enablement is the
// caller's concern, derived from the in-flight registry for the entity id.
type Resolution struct {
	Actions []Action `json:"actions"`
	Busy    bool     `json:"busy"`
}

// JobApplicationActionSet tells the job-application detail panel which
// control groups to render.
type JobApplicationActionSet struct {
	ShowDownloadButton bool `json:"showDownloadButton"`
	ShowUploadButton   bool `json:"showUploadButton"`
	ShowReviewButtons  bool `json:"showReviewButtons"`
}

var uploadStages = []CandidateStage{StageContractSigned, StageJobAppPending}

// ResolveContractActions maps a contract snapshot to its permitted actions.
// Primary actions come first, the download action is appended last. A
// contract stuck in any non-enumerated signing state resolves to no
// actions at all.
func ResolveContractActions(c ContractSnapshot, busy bool) Resolution {
	actions := []Action{}

	switch {
	case IsSignable(c):
		actions = append(actions, Action{
			ID:      ActionSubmitForSigning,
			Label:   "contracts.actions.submitForSigning",
			Variant: "primary",
			Icon:    "file-signature",
		})
	case IsSigned(c):
		if CanCreateOrder(c) {
			actions = append(actions, Action{
				ID:      ActionCreateOrder,
				Label:   "contracts.actions.createOrder",
				Variant: "primary",
				Icon:    "file-plus",
			})
		}
		if CanCompleteHiring(c) {
			actions = append(actions, Action{
				ID:      ActionCompleteHiring,
				Label:   "contracts.actions.completeHiring",
				Variant: "success",
				Icon:    "user-check",
			})
		}
		if c.Worker != nil {
			actions = append(actions, Action{
				ID:      ActionDownloadContractPDF,
				Label:   "contracts.actions.downloadPdf",
				Variant: "secondary",
				Icon:    "download",
			})
		} else {
			actions = append(actions, Action{
				ID:      ActionDownloadContract,
				Label:   "contracts.actions.download",
				Variant: "secondary",
				Icon:    "download",
			})
		}
	}

	return Resolution{Actions: actions, Busy: busy}
}

// ResolveApplicationActions maps a hiring-application snapshot to its
// permitted actions. A view_details action is always appended regardless
// of state.
func ResolveApplicationActions(a ApplicationSnapshot, busy bool) Resolution {
	actions := []Action{}

	if IsUnderReview(a) {
		actions = append(actions,
			Action{ID: ActionApprove, Label: "applications.actions.approve", Variant: "success", Icon: "check"},
			Action{ID: ActionRequestRevision, Label: "applications.actions.requestRevision", Variant: "warning", Icon: "rotate-ccw"},
			Action{ID: ActionReject, Label: "applications.actions.reject", Variant: "danger", Icon: "x"},
		)
	}
	if CanCreateContract(a) {
		actions = append(actions, Action{
			ID:      ActionCreateContract,
			Label:   "applications.actions.createContract",
			Variant: "primary",
			Icon:    "file-plus",
		})
	}
	actions = append(actions, Action{
		ID:      ActionViewDetails,
		Label:   "applications.actions.viewDetails",
		Variant: "secondary",
		Icon:    "eye",
	})

	return Resolution{Actions: actions, Busy: busy}
}

// ResolveOrderActions maps an order snapshot to its permitted actions.
// Uploaded orders are view-only.
func ResolveOrderActions(o OrderSnapshot, busy bool) Resolution {
	actions := []Action{}

	if EffectiveOrderStage(o) == StageOrderPending {
		actions = append(actions,
			Action{ID: ActionUploadOrder, Label: "orders.actions.upload", Variant: "primary", Icon: "upload"},
			Action{ID: ActionDownloadOrder, Label: "orders.actions.download", Variant: "secondary", Icon: "download"},
		)
	}

	return Resolution{Actions: actions, Busy: busy}
}

// JobApplicationActions returns the control groups visible for a
// job-application stage. Stages outside the enumerated set render the
// read-only status panel with no controls.
func JobApplicationActions(stage CandidateStage) JobApplicationActionSet {
	switch {
	case funk.Contains(uploadStages, stage):
		return JobApplicationActionSet{ShowDownloadButton: true, ShowUploadButton: true}
	case stage == StageJobAppReview:
		return JobApplicationActionSet{ShowReviewButtons: true}
	}
	return JobApplicationActionSet{}
}
