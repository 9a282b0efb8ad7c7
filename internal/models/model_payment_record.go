package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/homeware/paynotify/pkg/tool"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentRecord is the durable record of one payment outcome notification.
// transaction_id carries the unique constraint backing the duplicate guard.
type PaymentRecord struct {
	ID            string          `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TransactionID string          `gorm:"column:transaction_id;type:varchar(128);not null;uniqueIndex:unique_transaction_id" json:"transaction_id"`
	MerchantEmail string          `gorm:"column:merchant_email;type:varchar(255);not null" json:"merchant_email"`
	MerchantName  string          `gorm:"column:merchant_name;type:varchar(255);not null" json:"merchant_name"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(19,2);not null" json:"amount"`
	Currency      string          `gorm:"column:currency;type:varchar(10);not null" json:"currency"`
	PaymentMethod string          `gorm:"column:payment_method;type:varchar(64);not null" json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"column:payment_status;type:varchar(20);not null" json:"payment_status"`
	FailureReason *string         `gorm:"column:failure_reason;type:varchar(500)" json:"failure_reason"`
	CustomerEmail *string         `gorm:"column:customer_email;type:varchar(255)" json:"customer_email"`
	CustomerName  *string         `gorm:"column:customer_name;type:varchar(255)" json:"customer_name"`
	// TransactionDate defaults to the write time when the caller omitted it.
	TransactionDate time.Time `gorm:"column:transaction_date" json:"transaction_date"`
	OrderID         *string   `gorm:"column:order_id;type:varchar(128)" json:"order_id"`
	Description     *string   `gorm:"column:description;type:varchar(1000)" json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PaymentRecord) TableName() string { return "payment_record" }

// BeforeCreate assigns identity and defaults the transaction date at first
// write, never before.
func (r *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = tool.GenerateUUIDV7()
	}
	if r.TransactionDate.IsZero() {
		r.TransactionDate = time.Now()
	}
	return nil
}
