package jobs

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/logger"
)

// SendOverdueReminders emails customers whose active rentals are past their
// end date. The rental status is never touched; ACTIVE stays ACTIVE until
// the vehicle is actually returned or the rental is cancelled.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.end_date::text, c.name, c.email, v.brand, v.model, v.plate
			FROM rentals r
			JOIN customers c ON c.id = r.customer_id
			JOIN vehicles v ON v.id = r.vehicle_id
			WHERE r.status = 'ACTIVE'
			  AND r.end_date < $1::date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to find overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rentalID, endDate, name, email, brand, model, plate string
			if err := rows.Scan(&rentalID, &endDate, &name, &email, &brand, &model, &plate); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}

			vehicle := fmt.Sprintf("%s %s (%s)", brand, model, plate)
			if err := jr.emailSvc.SendOverdueReminder(ctx, email, name, vehicle, endDate); err != nil {
				logger.Error("Failed to send overdue reminder", "rental_id", rentalID, "error", err)
				continue
			}
			logger.Debug("Sent overdue reminder", "rental_id", rentalID, "end_date", endDate)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Sent overdue reminders", "count", count)
	})
}

// SendFleetSummary emails the admin a snapshot of the fleet: vehicle count,
// active rental count and the revenue currently booked on active rentals.
func (jr *JobRunner) SendFleetSummary() {
	jr.runWithRecovery("SendFleetSummary", func() {
		ctx := context.Background()

		var totalVehicles int32
		if err := jr.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles`).Scan(&totalVehicles); err != nil {
			logger.Error("Failed to count vehicles", "error", err)
			return
		}

		var activeRentals int32
		var activeRevenue float64
		query := `SELECT count(*), COALESCE(sum(total_price), 0) FROM rentals WHERE status = 'ACTIVE'`
		if err := jr.db.QueryRowContext(ctx, query).Scan(&activeRentals, &activeRevenue); err != nil {
			logger.Error("Failed to summarize active rentals", "error", err)
			return
		}

		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping fleet summary")
			return
		}

		if err := jr.emailSvc.SendFleetSummary(ctx, adminEmail, totalVehicles, activeRentals, activeRevenue); err != nil {
			logger.Error("Failed to send fleet summary", "error", err)
			return
		}
		logger.Info("Sent fleet summary", "vehicles", totalVehicles, "active_rentals", activeRentals)
	})
}
