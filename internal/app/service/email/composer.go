package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/homeware/paynotify/pkg/types"
)

// ErrInvalidStatus signals a status value the composer has no template for.
// Validation keeps this unreachable for normal inputs.
var ErrInvalidStatus = errors.New("invalid payment status")

const transactionDateLayout = "2006-01-02 15:04:05"

// Message is a composed notification ready for dispatch.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Compose renders the merchant notification for a validated payment event.
// Pure and deterministic given the record.
func Compose(n *types.PaymentNotification) (*Message, error) {
	switch n.NormalizedStatus() {
	case "SUCCESS":
		return &Message{
			Subject: "Payment Success - Transaction " + n.TransactionID,
			Body:    buildBody(n, successIntro, successOutro),
		}, nil
	case "FAILED":
		return &Message{
			Subject: "Payment Failed - Transaction " + n.TransactionID,
			Body:    buildBody(n, failedIntro, failedOutro),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, n.PaymentStatus)
	}
}

const (
	successIntro = "We are pleased to inform you that a payment has been successfully processed."
	failedIntro  = "We regret to inform you that a payment transaction has failed."
	successOutro = "Thank you for using our payment service."
	failedOutro  = "Please review the transaction and contact support if needed."
)

func buildBody(n *types.PaymentNotification, intro, outro string) string {
	var b strings.Builder
	b.WriteString("Dear " + n.MerchantName + ",\n\n")
	b.WriteString(intro + "\n\n")
	b.WriteString("Transaction Details:\n")
	b.WriteString("-------------------\n")
	b.WriteString("Transaction ID: " + n.TransactionID + "\n")
	b.WriteString("Amount: " + n.Amount.String() + " " + n.Currency + "\n")
	b.WriteString("Payment Method: " + n.PaymentMethod + "\n")

	if n.IsFailed() && present(n.FailureReason) {
		b.WriteString("Failure Reason: " + *n.FailureReason + "\n")
	}
	if present(n.OrderID) {
		b.WriteString("Order ID: " + *n.OrderID + "\n")
	}
	if present(n.CustomerName) {
		b.WriteString("Customer: " + *n.CustomerName)
		if present(n.CustomerEmail) {
			b.WriteString(" (" + *n.CustomerEmail + ")")
		}
		b.WriteString("\n")
	}
	if n.TransactionDate != nil {
		b.WriteString("Transaction Date: " + n.TransactionDate.Format(transactionDateLayout) + "\n")
	}
	if present(n.Description) {
		b.WriteString("Description: " + *n.Description + "\n")
	}

	b.WriteString("\n" + outro + "\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString("Homeware Payment System")
	return b.String()
}

func present(s *string) bool {
	return s != nil && *s != ""
}
