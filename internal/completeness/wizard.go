// Package completeness folds per-section completion checks of the
// multi-section contract wizard and the onboarding form-set into an
// overall progress value and a ready-to-submit flag.
package completeness

import (
	"math"
	"strings"
)

// SectionID identifies one form section. The sets are fixed: three wizard
// sections for the contract draft, nine for onboarding.
type SectionID string

const (
	SectionBasicInfo      SectionID = "basic_info"
	SectionPositionDuties SectionID = "position_duties"
	SectionWorkSchedule   SectionID = "work_schedule"
)

// WizardSections lists the contract-wizard sections in display order.
var WizardSections = []SectionID{SectionBasicInfo, SectionPositionDuties, SectionWorkSchedule}

// SectionStatus is the completion state of one section.
type SectionStatus struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields,omitempty"`
	MissingFiles  []string `json:"missing_files,omitempty"`
}

// FieldError carries validation output for one field. Array-valued fields
// (such as the list of duties) report per-element messages in Items; the
// field counts as erroneous only if some element actually holds one.
type FieldError struct {
	Message string
	Items   []string
}

func (e FieldError) HasError() bool {
	if strings.TrimSpace(e.Message) != "" {
		return true
	}
	for _, item := range e.Items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}

// FieldErrors maps field name to its validation state.
type FieldErrors map[string]FieldError

// WizardForm holds the contract-wizard field values. Break times only
// apply while HasBreak is on; the trial duration only while TrialPeriod
// is on.
type WizardForm struct {
	// basic_info
	EmployeeName string
	Position     string
	Department   string
	StartDate    string
	Salary       float64
	// position_duties
	Duties     []string
	Supervisor string
	// work_schedule
	WorkHoursPerWeek float64
	WorkDays         []string
	HasBreak         bool
	BreakStartTime   string
	BreakEndTime     string
	TrialPeriod      bool
	TrialDuration    float64
}

// WizardProgress is the aggregate over the three wizard sections.
// Complete is the client-computed AND of the section flags.
type WizardProgress struct {
	Sections map[SectionID]SectionStatus `json:"sections"`
	Complete bool                        `json:"complete"`
}

type field struct {
	name  string
	value any
}

// sectionFields returns the applicable fields of a section. The skip rule
// for governed fields runs here, before any emptiness or error check, so
// toggling has_break off retroactively ignores stale break times.
func (f WizardForm) sectionFields(section SectionID) []field {
	switch section {
	case SectionBasicInfo:
		return []field{
			{"employee_name", f.EmployeeName},
			{"position", f.Position},
			{"department", f.Department},
			{"start_date", f.StartDate},
			{"salary", f.Salary},
		}
	case SectionPositionDuties:
		return []field{
			{"duties", f.Duties},
			{"supervisor", f.Supervisor},
		}
	case SectionWorkSchedule:
		fields := []field{
			{"work_hours_per_week", f.WorkHoursPerWeek},
			{"work_days", f.WorkDays},
			{"has_break", f.HasBreak},
			{"trial_period", f.TrialPeriod},
		}
		if f.HasBreak {
			fields = append(fields,
				field{"break_start_time", f.BreakStartTime},
				field{"break_end_time", f.BreakEndTime},
			)
		}
		if f.TrialPeriod {
			fields = append(fields, field{"trial_duration", f.TrialDuration})
		}
		return fields
	}
	return nil
}

// isFilled applies the type-aware emptiness rule: strings trimmed
// non-empty, slices non-empty with every element non-empty, numbers
// non-NaN, booleans always filled. Unsupported types fail closed.
func isFilled(v any) bool {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) != ""
	case []string:
		if len(val) == 0 {
			return false
		}
		for _, item := range val {
			if strings.TrimSpace(item) == "" {
				return false
			}
		}
		return true
	case float64:
		return !math.IsNaN(val)
	case int:
		return true
	case bool:
		return true
	}
	return false
}

// EvaluateSection recomputes one section's status. Callers invoke it on
// every field change scoped to the owning section, keeping the
// interactive cost proportional to the section, not the whole form.
func EvaluateSection(form WizardForm, errors FieldErrors, section SectionID) SectionStatus {
	status := SectionStatus{Complete: true}

	for _, f := range form.sectionFields(section) {
		if !isFilled(f.value) {
			status.Complete = false
			status.MissingFields = append(status.MissingFields, f.name)
			continue
		}
		if errors[f.name].HasError() {
			status.Complete = false
		}
	}

	return status
}

// EvaluateWizard recomputes every section and the overall flag.
func EvaluateWizard(form WizardForm, errors FieldErrors) WizardProgress {
	progress := WizardProgress{Sections: make(map[SectionID]SectionStatus, len(WizardSections)), Complete: true}

	for _, section := range WizardSections {
		status := EvaluateSection(form, errors, section)
		progress.Sections[section] = status
		progress.Complete = progress.Complete && status.Complete
	}

	return progress
}
