package store_test

import (
	"context"
	"fmt"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store/model"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/workflow"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertContractStm        = "INSERT INTO contracts (id, org_id, candidate_stage) VALUES ('%s', '%s', '%s');"
	insertContractWithAppStm = "INSERT INTO contracts (id, org_id, candidate_stage, application_id) VALUES ('%s', '%s', '%s', '%s');"
)

var _ = Describe("contract store", Ordered, func() {
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
		It("successfully list all the contracts", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, uuid.NewString(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertContractStm, uuid.NewString(), "org-1", "contract_signed"))
			Expect(tx.Error).To(BeNil())

			contracts, err := s.Contract().List(context.TODO(), store.NewContractQueryFilter())
			Expect(err).To(BeNil())
			Expect(contracts).To(HaveLen(2))
		})

		It("list contracts -- filtered by application", func() {
			appID := uuid.NewString()
			tx := gormdb.Exec(fmt.Sprintf(insertContractWithAppStm, uuid.NewString(), "org-1", "decision", appID))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertContractStm, uuid.NewString(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())

			contracts, err := s.Contract().List(context.TODO(), store.NewContractQueryFilter().ByApplicationID(appID))
			Expect(err).To(BeNil())
			Expect(contracts).To(HaveLen(1))
			Expect(contracts[0].ApplicationID.String()).To(Equal(appID))
		})

		It("list contracts -- filtered by candidate stage", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, uuid.NewString(), "org-1", "order_pending"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertContractStm, uuid.NewString(), "org-1", "completed"))
			Expect(tx.Error).To(BeNil())

			contracts, err := s.Contract().List(context.TODO(), store.NewContractQueryFilter().ByCandidateStage("completed"))
			Expect(err).To(BeNil())
			Expect(contracts).To(HaveLen(1))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM contracts;")
		})
	})

	Context("create", func() {
		It("successfully creates a contract with wizard payload", func() {
			m := model.Contract{
				ID:             uuid.New(),
				OrgID:          "org-1",
				CandidateStage: "decision",
				Wizard:         []byte(`{"position":"engineer"}`),
			}
			contract, err := s.Contract().Create(context.TODO(), m)
			Expect(err).To(BeNil())
			Expect(contract.TrustMeStatus).To(BeNil())
			Expect(string(contract.Wizard)).To(ContainSubstring("engineer"))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM contracts;")
		})
	})

	Context("update", func() {
		It("moves the signing status without touching the stage", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())

			status := 1
			contract, err := s.Contract().Update(context.TODO(), id, store.ContractUpdate{TrustMeStatus: &status})
			Expect(err).To(BeNil())
			Expect(contract.TrustMeStatus).ToNot(BeNil())
			Expect(*contract.TrustMeStatus).To(Equal(1))
			Expect(contract.CandidateStage).To(Equal("decision"))
		})

		It("records the hired worker and advances the stage", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "order_uploaded"))
			Expect(tx.Error).To(BeNil())

			stage := "completed"
			workerID := uuid.New()
			workerName := "Aigerim S."
			contract, err := s.Contract().Update(context.TODO(), id, store.ContractUpdate{
				CandidateStage: &stage,
				WorkerID:       &workerID,
				WorkerName:     &workerName,
			})
			Expect(err).To(BeNil())
			Expect(contract.CandidateStage).To(Equal("completed"))
			Expect(contract.WorkerID).ToNot(BeNil())
			Expect(*contract.WorkerName).To(Equal("Aigerim S."))
		})

		It("update contract -- record not found", func() {
			stage := "completed"
			_, err := s.Contract().Update(context.TODO(), uuid.New(), store.ContractUpdate{CandidateStage: &stage})
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM contracts;")
		})
	})

	Context("snapshot", func() {
		It("maps a signed contract onto its workflow view", func() {
			appID := uuid.New()
			signed := 3
			m := model.Contract{
				ID:             uuid.New(),
				ApplicationID:  &appID,
				OrgID:          "org-1",
				TrustMeStatus:  &signed,
				CandidateStage: "job_app_approved",
			}
			contract, err := s.Contract().Create(context.TODO(), m)
			Expect(err).To(BeNil())

			snapshot := contract.ToSnapshot()
			Expect(workflow.IsSigned(snapshot)).To(BeTrue())
			Expect(workflow.CanCreateOrder(snapshot)).To(BeTrue())
			Expect(workflow.CanCompleteHiring(snapshot)).To(BeFalse())
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM contracts;")
		})
	})
})
