package jobs

import (
	"context"

	"agrirent-backend/internal/logger"
)

// ReconcileEquipmentAvailability flips availability off for equipment that
// still shows as available despite an approved request. The decision
// transaction normally handles this; the sweep catches rows the
// transaction could not reach, like equipment created after the fact.
func (jr *JobRunner) ReconcileEquipmentAvailability() {
	jr.runWithRecovery("ReconcileEquipmentAvailability", func() {
		ctx := context.Background()

		requests, err := jr.store.ListApprovedWithAvailableEquipment(ctx)
		if err != nil {
			logger.Error("Failed to list approved requests with available equipment", "error", err)
			return
		}

		count := 0
		for _, rr := range requests {
			if err := jr.store.SetAvailability(ctx, rr.EquipmentID, false); err != nil {
				logger.Error("Failed to reconcile equipment availability",
					"request_id", rr.ID, "equipment_id", rr.EquipmentID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Reconciled equipment availability", "count", count)
	})
}

// PurgeExpiredResetTokens clears password reset tokens past their expiry
// from both account collections.
func (jr *JobRunner) PurgeExpiredResetTokens() {
	jr.runWithRecovery("PurgeExpiredResetTokens", func() {
		ctx := context.Background()

		customers, err := jr.store.CustomerRepository.PurgeExpiredResetTokens(ctx)
		if err != nil {
			logger.Error("Failed to purge expired customer reset tokens", "error", err)
		}

		providers, err := jr.store.ProviderRepository.PurgeExpiredResetTokens(ctx)
		if err != nil {
			logger.Error("Failed to purge expired provider reset tokens", "error", err)
		}

		logger.Info("Purged expired reset tokens", "customers", customers, "providers", providers)
	})
}
