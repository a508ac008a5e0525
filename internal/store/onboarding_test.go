package store_test

import (
	"context"
	"fmt"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertOnboardingStm = "INSERT INTO onboarding_drafts (id, token, org_id) VALUES ('%s', '%s', '%s');"
)

var _ = Describe("onboarding store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	Context("get by token", func() {
		It("successfully reads a draft by the invitation token", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertOnboardingStm, uuid.NewString(), "token-1", "org-1"))
			Expect(tx.Error).To(BeNil())

			draft, err := s.Onboarding().GetByToken(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(draft.Token).To(Equal("token-1"))
			Expect(draft.IsComplete).To(BeFalse())
		})

		It("get draft -- record not found", func() {
			_, err := s.Onboarding().GetByToken(context.TODO(), "unknown-token")
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})

	Context("create", func() {
		It("successfully creates a draft", func() {
			draft, err := s.Onboarding().Create(context.TODO(), model.OnboardingDraft{
				ID:    uuid.New(),
				Token: "token-1",
				OrgID: "org-1",
			})
			Expect(err).To(BeNil())
			Expect(draft.Token).To(Equal("token-1"))
		})

		It("rejects a duplicate token", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertOnboardingStm, uuid.NewString(), "token-1", "org-1"))
			Expect(tx.Error).To(BeNil())

			_, err := s.Onboarding().Create(context.TODO(), model.OnboardingDraft{
				ID:    uuid.New(),
				Token: "token-1",
				OrgID: "org-1",
			})
			Expect(err).To(Equal(store.ErrDuplicateKey))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})

	Context("update", func() {
		It("persists section statuses and the completion flag", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertOnboardingStm, uuid.NewString(), "token-1", "org-1"))
			Expect(tx.Error).To(BeNil())

			sections := model.MakeSectionsField(map[completeness.SectionID]completeness.SectionStatus{
				completeness.SectionPersonalData: {Complete: true},
				completeness.SectionBankDetails:  {MissingFields: []string{"iban"}},
			})
			isComplete := false
			draft, err := s.Onboarding().Update(context.TODO(), "token-1", sections, &isComplete)
			Expect(err).To(BeNil())

			progress := draft.ToProgress()
			Expect(progress.Sections[completeness.SectionPersonalData].Complete).To(BeTrue())
			Expect(progress.Sections[completeness.SectionBankDetails].MissingFields).To(ContainElement("iban"))
			Expect(progress.IsComplete).To(BeFalse())
		})

		It("degrades a corrupt sections payload to empty statuses", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertOnboardingStm, uuid.NewString(), "token-1", "org-1"))
			Expect(tx.Error).To(BeNil())

			draft, err := s.Onboarding().Update(context.TODO(), "token-1", []byte("not-json"), nil)
			Expect(err).To(BeNil())

			progress := draft.ToProgress()
			Expect(progress.Sections).To(HaveLen(len(completeness.OnboardingSections)))
			Expect(progress.Sections[completeness.SectionPersonalData].Complete).To(BeFalse())
		})

		It("update draft -- record not found", func() {
			done := true
			_, err := s.Onboarding().Update(context.TODO(), "unknown-token", nil, &done)
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})
})
