package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentNotification is the inbound payment outcome event. It is constructed
// once per request and never mutated after validation.
//
// Amount is a pointer so that an explicit zero survives the required check;
// zero is a valid amount.
type PaymentNotification struct {
	TransactionID   string           `json:"transactionId" validate:"required,notblank"`
	MerchantEmail   string           `json:"merchantEmail" validate:"required,email"`
	MerchantName    string           `json:"merchantName" validate:"required,notblank"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	Currency        string           `json:"currency" validate:"required,notblank"`
	PaymentMethod   string           `json:"paymentMethod" validate:"required,notblank"`
	PaymentStatus   string           `json:"paymentStatus" validate:"required,payment_status"`
	FailureReason   *string          `json:"failureReason"`
	CustomerEmail   *string          `json:"customerEmail"`
	CustomerName    *string          `json:"customerName"`
	TransactionDate *time.Time       `json:"transactionDate"`
	OrderID         *string          `json:"orderId"`
	Description     *string          `json:"description"`
}

// NormalizedStatus returns the payment status upper-cased. Status matching is
// case-insensitive on input; only the normalized form reaches storage.
func (n *PaymentNotification) NormalizedStatus() string {
	return strings.ToUpper(strings.TrimSpace(n.PaymentStatus))
}

func (n *PaymentNotification) IsFailed() bool {
	return n.NormalizedStatus() == "FAILED"
}

func (n *PaymentNotification) IsSuccess() bool {
	return n.NormalizedStatus() == "SUCCESS"
}
