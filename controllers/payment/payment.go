package paymentController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"tuitionhub/config"
	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"
	"tuitionhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InitiatePayment creates (or reuses) the pending payment for an enrollment
// and opens an SSLCommerz checkout session. The transaction id is derived
// from the enrollment id, so retries land on the same payment row.
func InitiatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedInitiatePayment").(*struct {
		Amount       float64 `json:"amount"`
		EnrollmentID uint    `json:"enrollment_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Enrollment must belong to the requesting student
	var enrollment models.Enrollment
	if err := db.Where("id = ? AND student_id = ?", reqData.EnrollmentID, userID).
		Preload("Tuition").First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	tranID := fmt.Sprintf("txn_%d", enrollment.ID)

	// Get-or-create the payment row keyed by enrollment. An existing row is
	// reused as-is; the amount is not updated on retry.
	var payment models.Payment
	if err := db.Where("enrollment_id = ?", enrollment.ID).First(&payment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up payment!", nil)
		}
		payment = models.Payment{
			EnrollmentID:  enrollment.ID,
			StudentID:     userID,
			TutorID:       enrollment.Tuition.TutorID,
			Amount:        reqData.Amount,
			Status:        models.PaymentStatusPending,
			TransactionID: tranID,
			Gateway:       models.GatewaySSLCommerz,
		}
		if err := db.Create(&payment).Error; err != nil {
			log.Printf("Error creating payment for enrollment %d: %v", enrollment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
		}
	}

	session, err := utils.CreateGatewaySession(map[string]string{
		"total_amount":    fmt.Sprintf("%.2f", reqData.Amount),
		"currency":        "BDT",
		"tran_id":         tranID,
		"success_url":     config.AppConfig.BackendURL + "/payment/success/",
		"fail_url":        config.AppConfig.BackendURL + "/payment/fail/",
		"cancel_url":      config.AppConfig.BackendURL + "/payment/cancel/",
		"emi_option":      "0",
		"cus_name":        strings.TrimSpace(user.FirstName + " " + user.LastName),
		"cus_email":       user.Email,
		"cus_phone":       user.PhoneNumber,
		"cus_add1":        user.Address,
		"cus_city":        "Dhaka",
		"cus_country":     "Bangladesh",
		"shipping_method": "NO",
		"num_of_item":     "1",
		"product_name":    "Educational Services",
		"product_category": "Education",
		"product_profile": "general",
	})
	if err != nil {
		log.Printf("Payment initiation failed: %s: %v", tranID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment initiation failed!", nil)
	}
	if session.Status != "SUCCESS" {
		log.Printf("Payment initiation failed: %s: %s", tranID, session.FailedReason)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment initiation failed!", nil)
	}

	log.Printf("Payment initiated: %s", tranID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment session created!", fiber.Map{
		"payment_url":    session.GatewayPageURL,
		"transaction_id": tranID,
	})
}

// PaymentSuccess is called by SSLCommerz (server-to-server) after a
// successful payment. It completes the payment, verifies the enrollment,
// credits the tutor's wallet and issues the invoice in one transaction,
// then redirects the browser to the frontend enrollment page. Internal
// errors return 500 JSON rather than a redirect.
func PaymentSuccess(c *fiber.Ctx) error {
	tranID := c.FormValue("tran_id")
	if tranID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction ID missing!", nil)
	}

	fields := callbackFields(c)
	if fields["verify_sign"] != "" || fields["verify_key"] != "" {
		if !utils.VerifyCallbackSignature(fields) {
			log.Printf("Invalid callback signature for %s", tranID)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid callback signature!", nil)
		}
	} else {
		log.Printf("Callback for %s carries no signature", tranID)
	}

	enrollmentID, err := parseEnrollmentID(tranID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction ID format!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		log.Printf("Enrollment %d not found for %s", enrollmentID, tranID)
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	var payment models.Payment
	if err := tx.Where("transaction_id = ?", tranID).First(&payment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}
		// Missing payment row does not abort: the enrollment is still marked
		// paid so the student is never locked out of something they paid for.
		log.Printf("Payment record not found for %s", tranID)
	} else if payment.Status != models.PaymentStatusCompleted {
		now := time.Now()
		payment.Status = models.PaymentStatusCompleted
		payment.PaymentDate = &now
		if raw, err := json.Marshal(fields); err == nil {
			payment.GatewayResponse = datatypes.JSON(raw)
		}
		if err := tx.Save(&payment).Error; err != nil {
			tx.Rollback()
			log.Printf("Failed to complete payment %s: %v", tranID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}

		// The credit runs only on the PENDING->COMPLETED edge, so replayed
		// success callbacks cannot double-credit.
		if err := creditTutorWallet(tx, &payment); err != nil {
			tx.Rollback()
			log.Printf("Failed to credit wallet for %s: %v", tranID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}

		if _, err := utils.GenerateInvoice(tx, &payment); err != nil {
			tx.Rollback()
			log.Printf("Failed to issue invoice for %s: %v", tranID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}
	}

	enrollment.PaymentVerified = true
	if err := tx.Save(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to verify enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit payment %s: %v", tranID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	log.Printf("Payment successful for enrollment %d", enrollment.ID)

	successURL := fmt.Sprintf("%s/dashboard/my-enrollments/%d", config.AppConfig.FrontendURL, enrollment.ID)
	return c.Redirect(successURL, fiber.StatusFound)
}

// PaymentFail is called by SSLCommerz when a payment fails. It always
// redirects, even when the update errors out.
func PaymentFail(c *fiber.Ctx) error {
	tranID := c.FormValue("tran_id")
	if tranID != "" {
		if err := database.Database.Db.Model(&models.Payment{}).
			Where("transaction_id = ?", tranID).
			Update("status", models.PaymentStatusFailed).Error; err != nil {
			log.Printf("Payment fail update error for %s: %v", tranID, err)
		} else {
			log.Printf("Payment failed: %s", tranID)
		}
	}

	return c.Redirect(config.AppConfig.FrontendURL+"/dashboard/payment/fail/", fiber.StatusFound)
}

// PaymentCancel is called by SSLCommerz when the user abandons checkout.
// Cancellation is stored as FAILED; it is not distinguished from failure.
func PaymentCancel(c *fiber.Ctx) error {
	tranID := c.FormValue("tran_id")
	if tranID != "" {
		if err := database.Database.Db.Model(&models.Payment{}).
			Where("transaction_id = ?", tranID).
			Update("status", models.PaymentStatusFailed).Error; err != nil {
			log.Printf("Payment cancel update error for %s: %v", tranID, err)
		} else {
			log.Printf("Payment cancelled: %s", tranID)
		}
	}

	return c.Redirect(config.AppConfig.FrontendURL+"/dashboard/my-enrollments/", fiber.StatusFound)
}

// GetMyPayments returns the caller's payment history, student or tutor side.
func GetMyPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Payment{})
	if user.Role == models.RoleTutor {
		query = query.Where("tutor_id = ?", userID)
	} else {
		query = query.Where("student_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// creditTutorWallet moves a completed payment's amount into the tutor's
// wallet and writes the matching ledger entry, on the caller's transaction.
// The wallet row is provisioned on first credit.
func creditTutorWallet(tx *gorm.DB, payment *models.Payment) error {
	var wallet models.TutorWallet
	if err := tx.Where(models.TutorWallet{TutorID: payment.TutorID}).FirstOrCreate(&wallet).Error; err != nil {
		return err
	}

	balanceBefore := wallet.AvailableBalance
	wallet.TotalEarned += payment.Amount
	wallet.AvailableBalance += payment.Amount
	if err := tx.Save(&wallet).Error; err != nil {
		return err
	}

	entry := models.WalletEntry{
		TutorID:       payment.TutorID,
		PaymentID:     payment.ID,
		Amount:        payment.Amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  wallet.AvailableBalance,
		Description:   "Tuition payment " + payment.TransactionID,
		EntryDate:     time.Now(),
	}
	return tx.Create(&entry).Error
}

// parseEnrollmentID extracts the enrollment id from a "txn_<id>" transaction
// id. The second underscore-delimited token must be a positive integer.
func parseEnrollmentID(tranID string) (uint, error) {
	parts := strings.Split(tranID, "_")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed transaction id: %s", tranID)
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("malformed transaction id: %s", tranID)
	}
	return uint(id), nil
}

// callbackFields flattens the callback's query and form parameters. The
// gateway may deliver via POST form fields or GET query parameters.
func callbackFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	c.Context().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields
}
