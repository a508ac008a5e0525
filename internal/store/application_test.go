package store_test

import (
	"context"
	"fmt"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertApplicationStm         = "INSERT INTO applications (id, org_id, status, stage) VALUES ('%s', '%s', '%s', '%s');"
	insertApplicationWithNameStm = "INSERT INTO applications (id, org_id, status, stage, candidate_name) VALUES ('%s', '%s', '%s', '%s', '%s');"
)

var _ = Describe("application store", Ordered, func() {
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
		It("successfully list all the applications", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "draft", "filling"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())

			applications, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter(), store.NewApplicationQueryOptions())
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(2))
		})

		It("list applications -- filtered by org", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "draft", "filling"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-2", "draft", "filling"))
			Expect(tx.Error).To(BeNil())

			applications, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByOrgID("org-2"), store.NewApplicationQueryOptions())
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(1))
			Expect(applications[0].OrgID).To(Equal("org-2"))
		})

		It("list applications -- filtered by status", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "submitted", "review"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertApplicationStm, uuid.NewString(), "org-1", "approved", "decision"))
			Expect(tx.Error).To(BeNil())

			applications, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByStatus("approved"), store.NewApplicationQueryOptions())
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(1))
			Expect(applications[0].Status).To(Equal("approved"))
		})

		It("list applications -- no applications", func() {
			applications, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter(), store.NewApplicationQueryOptions())
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(0))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("get", func() {
		It("successfully get an application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationWithNameStm, id.String(), "org-1", "draft", "filling", "Aigerim S."))
			Expect(tx.Error).To(BeNil())

			application, err := s.Application().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(application.CandidateName).To(Equal("Aigerim S."))
			Expect(application.Status).To(Equal("draft"))
		})

		It("get application -- record not found", func() {
			_, err := s.Application().Get(context.TODO(), uuid.New())
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("create", func() {
		It("successfully creates an application", func() {
			m := model.Application{
				ID:            uuid.New(),
				OrgID:         "org-1",
				CandidateName: "Aigerim S.",
				Status:        "draft",
				Stage:         "invited",
			}
			application, err := s.Application().Create(context.TODO(), m)
			Expect(err).To(BeNil())
			Expect(application.ID).To(Equal(m.ID))

			count := 0
			err = gormdb.Raw("SELECT COUNT(*) FROM applications;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("update", func() {
		It("updates only the provided fields", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationWithNameStm, id.String(), "org-1", "submitted", "review", "Aigerim S."))
			Expect(tx.Error).To(BeNil())

			status := "approved"
			stage := "decision"
			application, err := s.Application().Update(context.TODO(), id, &status, &stage, nil)
			Expect(err).To(BeNil())
			Expect(application.Status).To(Equal("approved"))
			Expect(application.Stage).To(Equal("decision"))
			Expect(application.CandidateName).To(Equal("Aigerim S."))
			Expect(application.HasContract).To(BeFalse())
		})

		It("marks the contract flag", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "approved", "decision"))
			Expect(tx.Error).To(BeNil())

			hasContract := true
			application, err := s.Application().Update(context.TODO(), id, nil, nil, &hasContract)
			Expect(err).To(BeNil())
			Expect(application.HasContract).To(BeTrue())
			Expect(application.Status).To(Equal("approved"))
		})

		It("update application -- record not found", func() {
			status := "approved"
			_, err := s.Application().Update(context.TODO(), uuid.New(), &status, nil, nil)
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})

	Context("delete", func() {
		It("successfully deletes an application", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, id.String(), "org-1", "rejected", "decision"))
			Expect(tx.Error).To(BeNil())

			err := s.Application().Delete(context.TODO(), id)
			Expect(err).To(BeNil())

			count := 0
			err = gormdb.Raw("SELECT COUNT(*) FROM applications;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM applications;")
		})
	})
})
