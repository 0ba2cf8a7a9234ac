package models

import (
	"time"

	"gorm.io/gorm"
)

// TutorWallet holds the running balance aggregate for one tutor. Rows are
// provisioned lazily, on the first completed payment.
type TutorWallet struct {
	gorm.Model
	TutorID          uint    `json:"tutor_id" gorm:"uniqueIndex;not null"`
	TotalEarned      float64 `json:"total_earned" gorm:"type:numeric(10,2);default:0"`
	AvailableBalance float64 `json:"available_balance" gorm:"type:numeric(10,2);default:0"`
	PendingBalance   float64 `json:"pending_balance" gorm:"type:numeric(10,2);default:0"`
	TotalWithdrawn   float64 `json:"total_withdrawn" gorm:"type:numeric(10,2);default:0"`
	Tutor            User    `json:"-" gorm:"foreignKey:TutorID;constraint:OnDelete:CASCADE"`
}

func (TutorWallet) TableName() string {
	return "tutor_wallets"
}

// WalletEntry is one ledger line against a tutor's wallet, written in the
// same transaction as the balance change it records.
type WalletEntry struct {
	gorm.Model
	TutorID       uint      `json:"tutor_id" gorm:"index;not null"`
	PaymentID     uint      `json:"payment_id" gorm:"index"`
	Amount        float64   `json:"amount" gorm:"type:numeric(10,2);not null"`
	BalanceBefore float64   `json:"balance_before" gorm:"type:numeric(10,2);not null"`
	BalanceAfter  float64   `json:"balance_after" gorm:"type:numeric(10,2);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	EntryDate     time.Time `json:"entry_date" gorm:"not null"`
}

func (WalletEntry) TableName() string {
	return "wallet_entries"
}
