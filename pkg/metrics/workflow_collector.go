package metrics

import (
	"context"
	"fmt"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type workflowStatsCollector struct {
	store                     store.Store
	totalApplications         *prometheus.Desc
	applicationsByStatus      *prometheus.Desc
	contractsByCandidateStage *prometheus.Desc
	totalOnboardingDrafts     *prometheus.Desc
}

func newWorkflowStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_%s", hrWorkflow, name)
	}

	return &workflowStatsCollector{
		store: s,
		totalApplications: prometheus.NewDesc(
			fqName("applications_total"),
			"Total number of candidate applications.",
			nil,
			prometheus.Labels{},
		),
		applicationsByStatus: prometheus.NewDesc(
			fqName("applications_by_status_total"),
			"Candidate applications by status.",
			[]string{"status"},
			prometheus.Labels{},
		),
		contractsByCandidateStage: prometheus.NewDesc(
			fqName("contracts_by_candidate_stage_total"),
			"Contracts by candidate hiring stage.",
			[]string{"candidate_stage"},
			prometheus.Labels{},
		),
		totalOnboardingDrafts: prometheus.NewDesc(
			fqName("onboarding_drafts_total"),
			"Total number of onboarding drafts.",
			nil,
			prometheus.Labels{},
		),
	}
}

func (c *workflowStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalApplications
	ch <- c.applicationsByStatus
	ch <- c.contractsByCandidateStage
	ch <- c.totalOnboardingDrafts
}

// Collect implements Collector.
func (c *workflowStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.TODO())
	if err != nil {
		zap.S().Named("metrics").Errorf("failed to collect workflow statistics: %s", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.totalApplications, prometheus.GaugeValue, float64(stats.TotalApplications))
	for status, count := range stats.ApplicationsByStatus {
		ch <- prometheus.MustNewConstMetric(c.applicationsByStatus, prometheus.GaugeValue, float64(count), status)
	}
	for stage, count := range stats.ContractsByCandidateStage {
		ch <- prometheus.MustNewConstMetric(c.contractsByCandidateStage, prometheus.GaugeValue, float64(count), stage)
	}
	ch <- prometheus.MustNewConstMetric(c.totalOnboardingDrafts, prometheus.GaugeValue, float64(stats.TotalOnboardingDrafts))
}

// RegisterWorkflowStatsCollector wires the store-backed collector into the
// default registry.
func RegisterWorkflowStatsCollector(s store.Store) {
	prometheus.MustRegister(newWorkflowStatsCollector(s))
}
