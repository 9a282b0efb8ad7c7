package email

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/homeware/paynotify/pkg/types"
)

func baseNotification() *types.PaymentNotification {
	return &types.PaymentNotification{
		TransactionID: "TXN123456789",
		MerchantEmail: "merchant@example.com",
		MerchantName:  "Test Merchant",
		Amount:        lo.ToPtr(decimal.RequireFromString("100.50")),
		Currency:      "USD",
		PaymentMethod: "CREDIT_CARD",
		PaymentStatus: "SUCCESS",
	}
}

func TestCompose_SuccessSubjectAndBody(t *testing.T) {
	msg, err := Compose(baseNotification())
	require.NoError(t, err)

	require.Equal(t, "Payment Success - Transaction TXN123456789", msg.Subject)
	require.Contains(t, msg.Body, "Dear Test Merchant,")
	require.Contains(t, msg.Body, "We are pleased to inform you that a payment has been successfully processed.")
	require.Contains(t, msg.Body, "Transaction ID: TXN123456789")
	require.Contains(t, msg.Body, "Amount: 100.50 USD")
	require.Contains(t, msg.Body, "Payment Method: CREDIT_CARD")
	require.Contains(t, msg.Body, "Thank you for using our payment service.")
	require.Contains(t, msg.Body, "Homeware Payment System")
}

func TestCompose_OptionalFieldsOmittedWhenAbsent(t *testing.T) {
	msg, err := Compose(baseNotification())
	require.NoError(t, err)

	require.NotContains(t, msg.Body, "Order ID:")
	require.NotContains(t, msg.Body, "Customer:")
	require.NotContains(t, msg.Body, "Transaction Date:")
	require.NotContains(t, msg.Body, "Description:")
	require.NotContains(t, msg.Body, "Failure Reason:")
}

func TestCompose_OptionalFieldsIncludedWhenPresent(t *testing.T) {
	n := baseNotification()
	n.OrderID = lo.ToPtr("ORD-42")
	n.CustomerName = lo.ToPtr("Jordan Doe")
	n.CustomerEmail = lo.ToPtr("jordan@example.com")
	n.TransactionDate = lo.ToPtr(time.Date(2026, 3, 15, 9, 30, 5, 0, time.UTC))
	n.Description = lo.ToPtr("Monthly plan")

	msg, err := Compose(n)
	require.NoError(t, err)

	require.Contains(t, msg.Body, "Order ID: ORD-42")
	require.Contains(t, msg.Body, "Customer: Jordan Doe (jordan@example.com)")
	require.Contains(t, msg.Body, "Transaction Date: 2026-03-15 09:30:05")
	require.Contains(t, msg.Body, "Description: Monthly plan")
}

func TestCompose_CustomerWithoutEmailHasNoParentheses(t *testing.T) {
	n := baseNotification()
	n.CustomerName = lo.ToPtr("Jordan Doe")

	msg, err := Compose(n)
	require.NoError(t, err)
	require.Contains(t, msg.Body, "Customer: Jordan Doe\n")
	require.NotContains(t, msg.Body, "(")
}

func TestCompose_FailedSubjectAndBody(t *testing.T) {
	n := baseNotification()
	n.PaymentStatus = "failed"
	n.FailureReason = lo.ToPtr("Insufficient funds")

	msg, err := Compose(n)
	require.NoError(t, err)

	require.Equal(t, "Payment Failed - Transaction TXN123456789", msg.Subject)
	require.Contains(t, msg.Body, "We regret to inform you that a payment transaction has failed.")
	require.Contains(t, msg.Body, "Failure Reason: Insufficient funds")
	require.Contains(t, msg.Body, "Please review the transaction and contact support if needed.")
}

func TestCompose_Deterministic(t *testing.T) {
	n := baseNotification()
	first, err := Compose(n)
	require.NoError(t, err)
	second, err := Compose(n)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompose_UnknownStatusIsRejected(t *testing.T) {
	n := baseNotification()
	n.PaymentStatus = "PENDING"

	_, err := Compose(n)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCompose_ZeroAmount(t *testing.T) {
	n := baseNotification()
	n.Amount = lo.ToPtr(decimal.Zero)

	msg, err := Compose(n)
	require.NoError(t, err)
	require.Contains(t, msg.Body, "Amount: 0 USD")
}
