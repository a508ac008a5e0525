// Package i18n resolves opaque message keys into user-facing copy. The
// workflow core never hand-builds UI strings; it passes keys and literal
// fallbacks through a Translator.
package i18n

// Translator resolves a message key. Unknown keys resolve to the key
// itself so a missing catalog entry is visible instead of silent.
type Translator interface {
	T(key string) string
}

// Catalog is a map-backed Translator.
type Catalog map[string]string

func (c Catalog) T(key string) string {
	if msg, ok := c[key]; ok {
		return msg
	}
	return key
}

// Default is the built-in English catalog.
func Default() Catalog {
	return Catalog{
		"notifications.success":               "Success",
		"notifications.error":                 "Error",
		"notifications.genericError":          "Something went wrong. Please try again.",
		"applications.actions.approve":        "Approve",
		"applications.actions.requestRevision": "Request revision",
		"applications.actions.reject":         "Reject",
		"applications.actions.createContract": "Create contract",
		"applications.actions.viewDetails":    "View details",
		"applications.notifications.reviewed": "The application review has been saved.",
		"applications.notifications.contractCreated": "The contract draft has been created.",
		"contracts.actions.submitForSigning":  "Submit for signing",
		"contracts.actions.createOrder":       "Create order",
		"contracts.actions.completeHiring":    "Complete hiring",
		"contracts.actions.download":          "Download contract",
		"contracts.actions.downloadPdf":       "Download PDF",
		"contracts.notifications.submitted":   "The contract has been sent for signing.",
		"contracts.notifications.submitError": "Could not send the contract for signing.",
		"contracts.notifications.orderCreated": "The hiring order has been created.",
		"contracts.notifications.hiringCompleted": "The hiring has been completed.",
		"orders.actions.upload":               "Upload signed order",
		"orders.actions.download":             "Download order",
		"jobApplications.notifications.uploaded": "The signed job application has been uploaded.",
		"jobApplications.notifications.reviewed": "The job application review has been saved.",
		"onboarding.notifications.submitted":  "The onboarding form has been submitted.",
		"onboarding.notifications.incomplete": "Some sections are still incomplete.",
	}
}
