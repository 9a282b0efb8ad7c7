package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPaymentRecord_BeforeCreateAssignsIdentityAndDefaults(t *testing.T) {
	rec := &PaymentRecord{TransactionID: "TXN1"}
	require.NoError(t, rec.BeforeCreate(nil))

	require.NotEmpty(t, rec.ID)
	require.False(t, rec.TransactionDate.IsZero())
}

func TestPaymentRecord_BeforeCreateKeepsCallerSuppliedDate(t *testing.T) {
	supplied := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := &PaymentRecord{TransactionID: "TXN1", TransactionDate: supplied}
	require.NoError(t, rec.BeforeCreate(nil))
	require.Equal(t, supplied, rec.TransactionDate)

	id := rec.ID
	require.NoError(t, rec.BeforeCreate(nil))
	require.Equal(t, id, rec.ID)
}
