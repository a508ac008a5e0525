package service_test

import (
	"context"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/completeness"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/flagstore"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("onboarding service", Ordered, func() {
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

	completeAllSections := func(srv *service.OnboardingService, token string, except ...completeness.SectionID) {
		skip := map[completeness.SectionID]bool{}
		for _, id := range except {
			skip[id] = true
		}
		for _, id := range completeness.OnboardingSections {
			if skip[id] {
				continue
			}
			_, err := srv.UpdateSection(context.TODO(), token, id, completeness.SectionStatus{Complete: true})
			Expect(err).To(BeNil())
		}
	}

	Context("progress", func() {
		It("starts with every section incomplete and later steps disabled", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())

			progress, disabled, err := srv.Progress(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(progress.IsComplete).To(BeFalse())
			// first step stays reachable, everything after is blocked
			Expect(disabled).To(HaveLen(len(completeness.OnboardingSections) - 1))
		})

		It("unblocks the next step as sections complete", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())

			_, err = srv.UpdateSection(context.TODO(), "token-1", completeness.SectionPersonalData, completeness.SectionStatus{Complete: true})
			Expect(err).To(BeNil())

			_, disabled, err := srv.Progress(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(disabled).ToNot(ContainElement(completeness.SectionIdentityDocuments))
			Expect(disabled).To(ContainElement(completeness.SectionEducation))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})

	Context("social categories override", func() {
		It("treats the optional section as complete once opened", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())

			Expect(srv.OpenSection(context.TODO(), "token-1", completeness.SectionSocialCategories)).To(BeNil())

			progress, _, err := srv.Progress(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(progress.Sections[completeness.SectionSocialCategories].Complete).To(BeTrue())
		})

		It("keeps the override across service instances", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())
			Expect(srv.OpenSection(context.TODO(), "token-1", completeness.SectionSocialCategories)).To(BeNil())

			// a fresh instance backed by the same flag store
			srv2 := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))
			progress, _, err := srv2.Progress(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(progress.Sections[completeness.SectionSocialCategories].Complete).To(BeTrue())
		})

		It("ignores opens of mandatory sections", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())
			Expect(srv.OpenSection(context.TODO(), "token-1", completeness.SectionBankDetails)).To(BeNil())

			progress, _, err := srv.Progress(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(progress.Sections[completeness.SectionBankDetails].Complete).To(BeFalse())
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})

	Context("submit", func() {
		It("refuses while sections are missing", func() {
			flags := flagstore.NewMemoryStore()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(newTestWriter()))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())

			_, err = srv.Submit(context.TODO(), "token-1")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrOnboardingIncomplete{}))
		})

		It("accepts once every section is complete, the opened optional one included", func() {
			flags := flagstore.NewMemoryStore()
			eventWriter := newTestWriter()
			srv := service.NewOnboardingService(s, flags, events.NewEventProducer(eventWriter))

			_, err := srv.StartOnboarding(context.TODO(), "token-1", "org-1")
			Expect(err).To(BeNil())

			completeAllSections(srv, "token-1", completeness.SectionSocialCategories)
			Expect(srv.OpenSection(context.TODO(), "token-1", completeness.SectionSocialCategories)).To(BeNil())

			draft, err := srv.Submit(context.TODO(), "token-1")
			Expect(err).To(BeNil())
			Expect(draft.IsComplete).To(BeTrue())

			Eventually(func() int {
				eventWriter.mu.Lock()
				defer eventWriter.mu.Unlock()
				return len(eventWriter.Messages)
			}).Should(Equal(1))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM onboarding_drafts;")
		})
	})
})
