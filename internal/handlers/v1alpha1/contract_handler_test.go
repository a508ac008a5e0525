package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/adi1zhexen0v/erp-safari-hr/api/v1alpha1"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/config"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertContractStm        = "INSERT INTO contracts (id, org_id, candidate_stage) VALUES ('%s', '%s', '%s');"
	insertContractWithAppStm = "INSERT INTO contracts (id, org_id, candidate_stage, application_id) VALUES ('%s', '%s', '%s', '%s');"
	insertSignedContractStm  = "INSERT INTO contracts (id, org_id, candidate_stage, trust_me_status) VALUES ('%s', '%s', '%s', %d);"
	insertJobApplicationStm  = "INSERT INTO job_applications (id, contract_id, stage) VALUES ('%s', '%s', '%s');"
)

var _ = Describe("contract handler", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		router *chi.Mux
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())

		router = newTestRouter(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM job_applications;")
		gormdb.Exec("DELETE FROM contracts;")
		gormdb.Exec("DELETE FROM applications;")
	})

	Context("get", func() {
		It("returns a contract with its job applications", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "contract_signed"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobApplicationStm, uuid.NewString(), id.String(), "job_app_pending"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/"+id.String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.Contract
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.CandidateStage).To(Equal("contract_signed"))
			Expect(out.JobApplications).To(HaveLen(1))
		})

		It("returns 404 for an unknown contract", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/"+uuid.NewString(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("submit for signing", func() {
		It("sends a draft contract to the provider", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/submit-for-signing", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.Contract
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.SigningStatus).ToNot(BeNil())
			Expect(*out.SigningStatus).To(Equal(1))
		})

		It("refuses a contract that already left the decision stage", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "contract_signed"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/submit-for-signing", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("signing status", func() {
		It("opens a job application once signed", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertSignedContractStm, id.String(), "org-1", "decision", 1))
			Expect(tx.Error).To(BeNil())

			body, _ := json.Marshal(api.UpdateSigningStatusRequest{Status: 3})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/signing-status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.Contract
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.CandidateStage).To(Equal("contract_signed"))
			Expect(out.JobApplications).To(HaveLen(1))
			Expect(out.JobApplications[0].Stage).To(Equal("job_app_pending"))
		})

		It("rejects an out-of-range status", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/signing-status", bytes.NewReader([]byte(`{"status":17}`)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("order", func() {
		It("creates and uploads the hiring order", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "job_app_approved"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/order", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.Contract
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.CandidateStage).To(Equal("order_pending"))

			body, _ := json.Marshal(api.UploadOrderRequest{SignedPdfUrl: "https://files.local/order.pdf"})
			req = httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/order/upload", bytes.NewReader(body))
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.CandidateStage).To(Equal("order_uploaded"))
			Expect(out.OrderPdfUrl).ToNot(BeNil())
		})

		It("refuses an order before the job application is approved", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "contract_signed"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/order", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("complete hiring", func() {
		It("closes the workflow and assigns a worker", func() {
			applicationID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertApplicationStm, applicationID.String(), "org-1", "approved", "decision"))
			Expect(tx.Error).To(BeNil())
			id := uuid.New()
			tx = gormdb.Exec(fmt.Sprintf(insertContractWithAppStm, id.String(), "org-1", "order_uploaded", applicationID.String()))
			Expect(tx.Error).To(BeNil())

			body, _ := json.Marshal(api.CompleteHiringRequest{WorkerFullName: "Aizhan N."})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/"+id.String()+"/complete-hiring", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.Contract
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.CandidateStage).To(Equal("completed"))
			Expect(out.Worker).ToNot(BeNil())
			Expect(out.Worker.FullName).To(Equal("Aizhan N."))
		})
	})

	Context("download", func() {
		It("links the draft document before hiring completes", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, id.String(), "org-1", "decision"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/"+id.String()+"/download", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.DownloadLink
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.Url).To(ContainSubstring("/contracts/" + id.String()))
		})
	})

	Context("job applications", func() {
		It("lists the job applications of a contract", func() {
			contractID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, contractID.String(), "org-1", "job_app_pending"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobApplicationStm, uuid.NewString(), contractID.String(), "job_app_pending"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobApplicationStm, uuid.NewString(), uuid.NewString(), "job_app_pending"))
			Expect(tx.Error).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/job-applications?contract_id="+contractID.String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.JobApplicationList
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out).To(HaveLen(1))
			Expect(out[0].ContractId).To(Equal(contractID))
		})

		It("walks the upload and review loop", func() {
			contractID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, contractID.String(), "org-1", "job_app_pending"))
			Expect(tx.Error).To(BeNil())
			id := uuid.New()
			tx = gormdb.Exec(fmt.Sprintf(insertJobApplicationStm, id.String(), contractID.String(), "job_app_pending"))
			Expect(tx.Error).To(BeNil())

			body, _ := json.Marshal(api.UploadJobApplicationRequest{SignedPdfUrl: "https://files.local/job-app.pdf"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/job-applications/"+id.String()+"/upload", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var out api.JobApplication
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.Stage).To(Equal("job_app_review"))
			Expect(out.ShowReviewButtons).To(BeTrue())

			reviewBody, _ := json.Marshal(api.ReviewJobApplicationRequest{Outcome: "approved"})
			req = httptest.NewRequest(http.MethodPost, "/api/v1/job-applications/"+id.String()+"/review", bytes.NewReader(reviewBody))
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(BeNil())
			Expect(out.Stage).To(Equal("job_app_approved"))
		})

		It("refuses a review while the upload is pending", func() {
			contractID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertContractStm, contractID.String(), "org-1", "job_app_pending"))
			Expect(tx.Error).To(BeNil())
			id := uuid.New()
			tx = gormdb.Exec(fmt.Sprintf(insertJobApplicationStm, id.String(), contractID.String(), "job_app_pending"))
			Expect(tx.Error).To(BeNil())

			body, _ := json.Marshal(api.ReviewJobApplicationRequest{Outcome: "approved"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/job-applications/"+id.String()+"/review", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("health", func() {
		It("responds ok", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
