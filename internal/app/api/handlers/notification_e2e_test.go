package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/homeware/paynotify/internal/app/service/notification"
	"github.com/homeware/paynotify/internal/models"
)

// Pipeline tests wiring the real orchestrator to the handler, substituting
// only the storage and mail collaborators.

type memStore struct {
	records map[string]*models.PaymentRecord
}

func (s *memStore) FindByTransactionID(_ context.Context, transactionID string) (*models.PaymentRecord, error) {
	return s.records[transactionID], nil
}

func (s *memStore) Insert(_ context.Context, record *models.PaymentRecord) error {
	if _, ok := s.records[record.TransactionID]; ok {
		return notification.ErrDuplicateTransaction
	}
	record.ID = "rec-" + record.TransactionID
	record.CreatedAt = time.Now()
	s.records[record.TransactionID] = record
	return nil
}

type memMailer struct {
	sent []string
}

func (m *memMailer) Send(_ context.Context, _, _, body string) error {
	m.sent = append(m.sent, body)
	return nil
}

type noopDeliveryLog struct{}

func (noopDeliveryLog) Save(context.Context, *models.EmailDeliveryLog) {}

func newPipelineRouter() (*gin.Engine, *memStore, *memMailer) {
	store := &memStore{records: map[string]*models.PaymentRecord{}}
	mailer := &memMailer{}
	svc := notification.NewService(store, mailer, noopDeliveryLog{}, zap.NewNop().Sugar())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterNotificationRoutes(r.Group("/api/notifications"), svc)
	return r, store, mailer
}

func TestPipeline_SuccessThenResubmitConflicts(t *testing.T) {
	r, store, mailer := newPipelineRouter()

	payload := map[string]any{
		"transactionId": "TXN1",
		"merchantEmail": "merchant@example.com",
		"merchantName":  "Test Merchant",
		"amount":        100.50,
		"currency":      "USD",
		"paymentMethod": "CREDIT_CARD",
		"paymentStatus": "SUCCESS",
	}

	w := postNotification(t, r, payload)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Payment successful !!!", w.Body.String())
	require.Len(t, store.records, 1)
	require.Len(t, mailer.sent, 1)
	require.Contains(t, mailer.sent[0], "TXN1")
	require.Contains(t, mailer.sent[0], "100.50 USD")

	// Resubmission of the same transaction id hits the duplicate guard.
	w = postNotification(t, r, payload)
	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	require.Equal(t, "Transaction ID already exists", resp.Message)
	require.Len(t, store.records, 1)
	require.Len(t, mailer.sent, 1)
}

func TestPipeline_FailedWithoutReasonIsRejected(t *testing.T) {
	r, store, mailer := newPipelineRouter()

	payload := validPayload()
	payload["paymentStatus"] = "FAILED"
	payload["failureReason"] = nil

	w := postNotification(t, r, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Equal(t, "Failure reason is required when payment status is FAILED", resp.Message)
	require.Empty(t, store.records)
	require.Empty(t, mailer.sent)
}

func TestPipeline_MissingRequiredFieldsReportedTogether(t *testing.T) {
	r, store, mailer := newPipelineRouter()

	w := postNotification(t, r, map[string]any{"paymentStatus": "SUCCESS"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Equal(t, "Validation Failed", resp.Error)
	require.Len(t, resp.FieldErrors, 6)
	require.Empty(t, store.records)
	require.Empty(t, mailer.sent)
}

func TestPipeline_ZeroAmountIsAccepted(t *testing.T) {
	r, store, _ := newPipelineRouter()

	payload := validPayload()
	payload["amount"] = 0
	w := postNotification(t, r, payload)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.records, 1)
}
