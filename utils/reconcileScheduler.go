package utils

import (
	"fmt"
	"log"
	"time"

	"tuitionhub/database"
	"tuitionhub/models"

	"github.com/robfig/cron/v3"
)

// logReconcile logs reconciliation events with timestamp
func logReconcile(message string) {
	log.Printf("[RECONCILE %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReconcileScheduler starts the hourly stale-payment audit. The audit
// only logs; pending payments are never expired or mutated automatically,
// the report exists to support manual reconciliation.
func StartReconcileScheduler() *cron.Cron {
	scheduler := cron.New()

	if _, err := scheduler.AddFunc("@hourly", AuditStalePayments); err != nil {
		log.Printf("Failed to register reconcile job: %v", err)
		return scheduler
	}

	scheduler.Start()
	logReconcile("Stale payment audit scheduled hourly")
	return scheduler
}

// AuditStalePayments logs every payment that has been PENDING for more than
// 24 hours, with enough context to chase it against the gateway's records.
func AuditStalePayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	var stale []models.Payment
	if err := db.Where("status = ? AND created_at < ?", models.PaymentStatusPending, cutoff).
		Order("created_at asc").
		Find(&stale).Error; err != nil {
		logReconcile("Error fetching stale payments: " + err.Error())
		return
	}

	if len(stale) == 0 {
		return
	}

	logReconcile(fmt.Sprintf("%d payment(s) pending longer than 24h", len(stale)))
	for _, payment := range stale {
		logReconcile(fmt.Sprintf("Pending since %s: %s (enrollment %d)",
			payment.CreatedAt.Format(time.RFC3339), payment.TransactionID, payment.EnrollmentID))
	}
}
