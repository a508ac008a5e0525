package service_test

import (
	"context"
	"fmt"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/events"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/service"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertApplicationStm = "INSERT INTO applications (id, org_id, status, stage) VALUES ('%s', '%s', '%s', '%s');"
)

var _ = Describe("application service", Ordered, func() {
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

	Context("list", func() {
		It("successfully list the applications of one org", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-2", "submitted", "review"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			applications, err := srv.ListApplications(context.TODO(), &service.ApplicationFilter{OrgID: "org-1"})
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(1))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("review", func() {
		It("approves a submitted application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())

			eventWriter := newTestWriter()
			srv := service.NewApplicationService(s, events.NewEventProducer(eventWriter))

			application, err := srv.ReviewApplication(context.TODO(), id, workflow.ReviewApproved)
			Expect(err).To(BeNil())
			Expect(application.Status).To(Equal("approved"))
			Expect(application.Stage).To(Equal("decision"))

			Eventually(func() int {
				eventWriter.mu.Lock()
				defer eventWriter.mu.Unlock()
				return len(eventWriter.Messages)
			}).Should(Equal(1))
		})

		It("sends a revision request back to filling", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			application, err := srv.ReviewApplication(context.TODO(), id, workflow.ReviewRevision)
			Expect(err).To(BeNil())
			Expect(application.Status).To(Equal("revision_requested"))
			Expect(application.Stage).To(Equal("filling"))
		})

		It("refuses to review a draft application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "draft", "filling"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			_, err := srv.ReviewApplication(context.TODO(), id, workflow.ReviewApproved)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidTransition{}))
		})

		It("review -- application not found", func() {
			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			_, err := srv.ReviewApplication(context.TODO(), uuid.New(), workflow.ReviewApproved)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("create contract", func() {
		It("creates a contract draft and marks the application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "approved", "decision"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			contract, err := srv.CreateContract(context.TODO(), model.Contract{
				ID:             uuid.New(),
				ApplicationID:  &id,
				OrgID:          "org-1",
				CandidateStage: "decision",
			})
			Expect(err).To(BeNil())
			Expect(contract.CandidateStage).To(Equal("decision"))

			application, err := s.Application().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(application.HasContract).To(BeTrue())
		})

		It("refuses a second contract for the same application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "approved", "decision"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			_, err := srv.CreateContract(context.TODO(), model.Contract{
				ID: uuid.New(), ApplicationID: &id, OrgID: "org-1", CandidateStage: "decision",
			})
			Expect(err).To(BeNil())

			_, err = srv.CreateContract(context.TODO(), model.Contract{
				ID: uuid.New(), ApplicationID: &id, OrgID: "org-1", CandidateStage: "decision",
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrContractAlreadyExists{}))
		})

		It("refuses a contract for a rejected application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "rejected", "decision"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			_, err := srv.CreateContract(context.TODO(), model.Contract{
				ID: uuid.New(), ApplicationID: &id, OrgID: "org-1", CandidateStage: "decision",
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidTransition{}))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM contracts;")
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("resolve actions", func() {
		It("offers the review set for a submitted application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewApplicationService(s, events.NewEventProducer(newTestWriter()))
			application, err := srv.GetApplication(context.TODO(), id)
			Expect(err).To(BeNil())

			resolution := srv.ResolveActions(application, false)
			ids := []workflow.ActionID{}
			for _, a := range resolution.Actions {
				ids = append(ids, a.ID)
			}
			Expect(ids).To(Equal([]workflow.ActionID{
				workflow.ActionApprove,
				workflow.ActionRequestRevision,
				workflow.ActionReject,
				workflow.ActionViewDetails,
			}))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})
})
