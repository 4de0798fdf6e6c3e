package jobs

import (
	"context"
	"time"

	"motorent-backend/internal/logger"
)

// ReleaseEndedRentals returns motorcycles to the catalog once their last
// approved rental has ended.
func (jr *JobRunner) ReleaseEndedRentals() {
	jr.runWithRecovery("ReleaseEndedRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE motorcycles
			SET status = 'available',
			    updated_on = NOW()
			WHERE status = 'rented'
			  AND NOT EXISTS (
				SELECT 1 FROM rentals r
				WHERE r.motorcycle_id = motorcycles.id
				  AND r.status = 'approved'
				  AND r.end_date >= $1
			  )
			RETURNING id
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to release ended rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan released motorcycle", "error", err)
				continue
			}
			logger.Debug("Released motorcycle", "motorcycle_id", id)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating released motorcycles", "error", err)
			return
		}

		logger.Info("Released motorcycles back to catalog", "count", count)
	})
}

// ExpireStaleProposals rejects pending proposals the owner never answered.
func (jr *JobRunner) ExpireStaleProposals() {
	jr.runWithRecovery("ExpireStaleProposals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'rejected',
			    rejection_reason = 'proposal expired without a response',
			    updated_on = NOW()
			WHERE status = 'pending'
			  AND created_on < NOW() - make_interval(days => $1)
			RETURNING id, renter_id
		`

		rows, err := jr.db.QueryContext(ctx, query, int(jr.config.Rental.PendingExpiryDays))
		if err != nil {
			logger.Error("Failed to expire stale proposals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, renterID string
			if err := rows.Scan(&id, &renterID); err != nil {
				logger.Error("Failed to scan expired proposal", "error", err)
				continue
			}
			logger.Debug("Expired stale proposal", "rental_id", id, "renter_id", renterID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired proposals", "error", err)
			return
		}

		logger.Info("Expired stale proposals", "count", count)
	})
}
