package completeness

import (
	"context"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/flagstore"
)

// Onboarding section identifiers, in step order.
const (
	SectionPersonalData      SectionID = "personal_data"
	SectionIdentityDocuments SectionID = "identity_documents"
	SectionEducation         SectionID = "education"
	SectionWorkExperience    SectionID = "work_experience"
	SectionFamilyMembers     SectionID = "family_members"
	SectionSocialCategories  SectionID = "social_categories"
	SectionBankDetails       SectionID = "bank_details"
	SectionMilitaryRecord    SectionID = "military_record"
	SectionAdditionalFiles   SectionID = "additional_files"
)

// OnboardingSections lists the onboarding steps in order.
var OnboardingSections = []SectionID{
	SectionPersonalData,
	SectionIdentityDocuments,
	SectionEducation,
	SectionWorkExperience,
	SectionFamilyMembers,
	SectionSocialCategories,
	SectionBankDetails,
	SectionMilitaryRecord,
	SectionAdditionalFiles,
}

// Progress is the onboarding completion state. Per-section statuses and
// IsComplete are server-authoritative; the aggregator only layers the
// social-categories override on top.
type Progress struct {
	Sections   map[SectionID]SectionStatus `json:"sections"`
	IsComplete bool                        `json:"is_complete"`
}

// Onboarding owns the client-side completion state for one onboarding
// token. The server only reports completeness for sections the user has
// touched, so the optional social_categories section is forced complete
// once it has ever been opened. The opened flag lives both in memory and
// in the durable flag store, keyed by token.
type Onboarding struct {
	token                string
	flags                flagstore.Store
	socialCategoriesSeen bool
	progress             Progress
}

// NewOnboarding restores the opened flag for the token from the durable
// store.
func NewOnboarding(ctx context.Context, token string, flags flagstore.Store) (*Onboarding, error) {
	o := &Onboarding{token: token, flags: flags, progress: emptyProgress()}

	val, err := flags.Get(ctx, flagstore.SocialCategoriesKey(token))
	if err != nil {
		return nil, err
	}
	o.socialCategoriesSeen = val == "true"

	return o, nil
}

func emptyProgress() Progress {
	p := Progress{Sections: make(map[SectionID]SectionStatus, len(OnboardingSections))}
	for _, s := range OnboardingSections {
		p.Sections[s] = SectionStatus{}
	}
	return p
}

// Apply replaces the tracked progress with a fresh server response.
func (o *Onboarding) Apply(p Progress) {
	o.progress = p
}

// OpenSection records that the user navigated into a section. Opening
// social_categories persists the durable flag so the override survives
// the session.
func (o *Onboarding) OpenSection(ctx context.Context, section SectionID) error {
	if section != SectionSocialCategories || o.socialCategoriesSeen {
		return nil
	}
	o.socialCategoriesSeen = true
	return o.flags.Set(ctx, flagstore.SocialCategoriesKey(o.token), "true")
}

// Progress returns the server progress with the social-categories
// override applied. IsComplete comes from the server verbatim.
func (o *Onboarding) Progress() Progress {
	out := Progress{
		Sections:   make(map[SectionID]SectionStatus, len(o.progress.Sections)),
		IsComplete: o.progress.IsComplete,
	}
	for id, status := range o.progress.Sections {
		out.Sections[id] = status
	}
	if o.socialCategoriesSeen {
		out.Sections[SectionSocialCategories] = SectionStatus{Complete: true}
	}
	return out
}

// DisabledSteps lists the sections the stepper must not let the user jump
// to: a step is enabled only when every preceding step is complete.
func (o *Onboarding) DisabledSteps() []SectionID {
	progress := o.Progress()

	disabled := []SectionID{}
	blocked := false
	for i, section := range OnboardingSections {
		if i == 0 {
			blocked = !progress.Sections[section].Complete
			continue
		}
		if blocked {
			disabled = append(disabled, section)
			continue
		}
		if !progress.Sections[section].Complete {
			blocked = true
		}
	}
	return disabled
}

// Reset drops all tracked progress. The durable opened flag deliberately
// survives: an optional section stays satisfied once seen.
func (o *Onboarding) Reset() {
	o.progress = emptyProgress()
}
