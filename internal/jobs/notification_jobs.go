package jobs

import (
	"context"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

// SendStartReminders emails renters whose approved rental begins soon.
func (jr *JobRunner) SendStartReminders() {
	jr.runWithRecovery("SendStartReminders", func() {
		ctx := context.Background()

		targetDate := time.Now().UTC().
			AddDate(0, 0, int(jr.config.Rental.StartReminderDays)).
			Format("2006-01-02")

		query := `
			SELECT r.id, r.start_date, p.id, p.email, m.brand, m.model
			FROM rentals r
			JOIN profiles p ON p.id = r.renter_id
			JOIN motorcycles m ON m.id = r.motorcycle_id
			WHERE r.status = 'approved'
			  AND r.start_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, targetDate)
		if err != nil {
			logger.Error("Failed to query upcoming rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rentalID, startDate, renterID, email, brand, model string
			if err := rows.Scan(&rentalID, &startDate, &renterID, &email, &brand, &model); err != nil {
				logger.Error("Failed to scan upcoming rental", "error", err)
				continue
			}

			motoName := brand + " " + model
			if err := jr.services.Email.SendRentalStartReminder(ctx, email, motoName, startDate); err != nil {
				logger.Error("Failed to send start reminder", "rental_id", rentalID, "error", err)
			}
			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				UserID:  renterID,
				Title:   "Seu aluguel começa em breve",
				Message: "Seu aluguel de " + motoName + " começa em " + startDate,
				Attributes: map[string]string{
					"type":      "RENTAL_START_REMINDER",
					"rental_id": rentalID,
				},
			})
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming rentals", "error", err)
			return
		}

		logger.Info("Sent rental start reminders", "count", count)
	})
}

// FlagOverduePayments marks pending payments past their due date as overdue
// and notifies the renter.
func (jr *JobRunner) FlagOverduePayments() {
	jr.runWithRecovery("FlagOverduePayments", func() {
		ctx := context.Background()

		query := `
			UPDATE payments
			SET status = 'overdue',
			    updated_on = NOW()
			WHERE status = 'pending'
			  AND due_date < $1
			RETURNING id, rental_id, renter_id, due_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to flag overdue payments", "error", err)
			return
		}
		defer rows.Close()

		type overdue struct {
			paymentID string
			rentalID  string
			renterID  string
			dueDate   string
		}
		var flagged []overdue
		for rows.Next() {
			var o overdue
			if err := rows.Scan(&o.paymentID, &o.rentalID, &o.renterID, &o.dueDate); err != nil {
				logger.Error("Failed to scan overdue payment", "error", err)
				continue
			}
			flagged = append(flagged, o)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue payments", "error", err)
			return
		}

		for _, o := range flagged {
			renter, err := jr.store.ProfileRepository.GetByID(ctx, o.renterID)
			if err != nil {
				logger.Error("Failed to load renter for overdue notice", "renter_id", o.renterID, "error", err)
				continue
			}
			rental, err := jr.store.RentalRepository.GetByID(ctx, o.rentalID)
			if err != nil {
				logger.Error("Failed to load rental for overdue notice", "rental_id", o.rentalID, "error", err)
				continue
			}
			moto, err := jr.store.MotorcycleRepository.GetByID(ctx, rental.MotorcycleID)
			if err != nil {
				logger.Error("Failed to load motorcycle for overdue notice", "motorcycle_id", rental.MotorcycleID, "error", err)
				continue
			}

			motoName := moto.Brand + " " + moto.Model
			if err := jr.services.Email.SendPaymentOverdue(ctx, renter.Email, motoName, o.dueDate); err != nil {
				logger.Error("Failed to send overdue notice", "payment_id", o.paymentID, "error", err)
			}
			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				UserID:  renter.ID,
				Title:   "Pagamento em atraso",
				Message: "O pagamento do aluguel de " + motoName + " está em atraso",
				Attributes: map[string]string{
					"type":       "PAYMENT_OVERDUE",
					"payment_id": o.paymentID,
					"rental_id":  o.rentalID,
				},
			})
		}

		logger.Info("Flagged overdue payments", "count", len(flagged))
	})
}
