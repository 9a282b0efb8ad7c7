package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/homeware/paynotify/internal/app/service/email"
	"github.com/homeware/paynotify/internal/models"
	"github.com/homeware/paynotify/internal/platform/mail"
	"github.com/homeware/paynotify/pkg/logctx"
	"github.com/homeware/paynotify/pkg/types"
)

// DeliveryLogger records outbound mail attempts. Implementations are
// best-effort and must not fail the request.
type DeliveryLogger interface {
	Save(ctx context.Context, entry *models.EmailDeliveryLog)
}

// Service sequences one inbound notification through validation, the
// duplicate guard, persistence, composition and dispatch. Each stage-local
// failure is translated into exactly one taxonomy error; dispatch failure is
// surfaced after the record has already committed, never rolled back.
type Service struct {
	store    Store
	mailer   mail.Mailer
	dlog     DeliveryLogger
	validate *validatorv10.Validate
	log      *zap.SugaredLogger
}

func NewService(store Store, mailer mail.Mailer, dlog DeliveryLogger, log *zap.SugaredLogger) *Service {
	return &Service{
		store:    store,
		mailer:   mailer,
		dlog:     dlog,
		validate: NewValidator(),
		log:      log,
	}
}

func (s *Service) Process(ctx context.Context, n *types.PaymentNotification) (*models.PaymentRecord, error) {
	lg := logctx.FromCtx(ctx, s.log)
	lg.Infow("payment_notification_received",
		"transaction_id", n.TransactionID, "payment_status", n.PaymentStatus)

	if err := Validate(s.validate, n); err != nil {
		lg.Warnw("payment_notification_rejected", "transaction_id", n.TransactionID, "error", err.Error())
		return nil, err
	}

	// Fast-path duplicate pre-check. Non-atomic with the insert below; the
	// store's unique constraint remains the backstop.
	existing, err := s.store.FindByTransactionID(ctx, n.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		lg.Warnw("duplicate_transaction", "transaction_id", n.TransactionID)
		return nil, ErrDuplicateTransaction
	}

	record := recordFromNotification(n)
	if err := s.store.Insert(ctx, record); err != nil {
		if errors.Is(err, ErrDuplicateTransaction) {
			lg.Warnw("duplicate_transaction", "transaction_id", n.TransactionID)
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	lg.Infow("payment_record_saved", "id", record.ID, "transaction_id", record.TransactionID)

	msg, err := email.Compose(n)
	if err != nil {
		// Unreachable post-validation; treated as an internal defect.
		return record, fmt.Errorf("compose notification: %w", err)
	}

	msgBytes, _ := json.Marshal(msg)
	s.saveDeliveryLog(ctx, n, msgBytes, models.EmailDeliveryLogStatusReceived, nil)

	if err := s.mailer.Send(ctx, n.MerchantEmail, msg.Subject, msg.Body); err != nil {
		lg.Errorw("payment_email_send_failed",
			"transaction_id", n.TransactionID, "merchant_email", n.MerchantEmail, "error", err.Error())
		s.saveDeliveryLog(ctx, n, msgBytes, models.EmailDeliveryLogStatusSendFailed, err)
		// The record stays persisted: at-most-once store, best-effort notify.
		return record, fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	s.saveDeliveryLog(ctx, n, msgBytes, models.EmailDeliveryLogStatusSent, nil)

	lg.Infow("payment_email_sent",
		"payment_status", record.PaymentStatus, "merchant_email", n.MerchantEmail)
	return record, nil
}

func (s *Service) saveDeliveryLog(ctx context.Context, n *types.PaymentNotification, msg []byte, status models.EmailDeliveryLogStatus, sendErr error) {
	if s.dlog == nil {
		return
	}
	var traceID string
	if v, ok := ctx.Value("traceID").(string); ok {
		traceID = v
	}
	entry := &models.EmailDeliveryLog{
		TraceID:       traceID,
		TransactionID: n.TransactionID,
		Recipient:     n.MerchantEmail,
		Message:       datatypes.JSON(msg),
		Status:        status,
	}
	if sendErr != nil {
		resBytes, _ := json.Marshal(map[string]any{"error": sendErr.Error()})
		entry.Result = lo.ToPtr(datatypes.JSON(resBytes))
	}
	s.dlog.Save(ctx, entry)
}

func recordFromNotification(n *types.PaymentNotification) *models.PaymentRecord {
	rec := &models.PaymentRecord{
		TransactionID: n.TransactionID,
		MerchantEmail: n.MerchantEmail,
		MerchantName:  n.MerchantName,
		Amount:        *n.Amount,
		Currency:      n.Currency,
		PaymentMethod: n.PaymentMethod,
		PaymentStatus: models.PaymentStatus(n.NormalizedStatus()),
		FailureReason: n.FailureReason,
		CustomerEmail: n.CustomerEmail,
		CustomerName:  n.CustomerName,
		OrderID:       n.OrderID,
		Description:   n.Description,
	}
	if n.TransactionDate != nil {
		rec.TransactionDate = *n.TransactionDate
	}
	return rec
}
