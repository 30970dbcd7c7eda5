package service

import (
	"context"
	"fmt"

	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/repository"
)

// LeadReconciler reverts leads left tagged with a team their owner no longer
// belongs to, which a crash between membership removal and lead release can cause
type LeadReconciler struct {
	store   repository.StoreInterface
	metrics *metrics.Metrics
}

// NewLeadReconciler creates a new lead reconciler
func NewLeadReconciler(store repository.StoreInterface, m *metrics.Metrics) *LeadReconciler {
	return &LeadReconciler{store: store, metrics: m}
}

// Run releases every orphaned team lead and returns how many were changed
func (r *LeadReconciler) Run(ctx context.Context) (int64, error) {
	released, err := r.store.Leads().ReleaseOrphaned(ctx)
	r.metrics.RecordOperation("reconcile_leads", err)
	if err != nil {
		return 0, fmt.Errorf("failed to release orphaned leads: %w", err)
	}

	r.metrics.AddLeadsReassigned("reconciled", released)
	if released > 0 {
		logger.WithContext(ctx).WithField("leads_released", released).Warn("released orphaned team leads")
	}
	return released, nil
}
