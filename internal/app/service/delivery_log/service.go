package delivery_log

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homeware/paynotify/internal/models"
	"github.com/homeware/paynotify/pkg/logctx"
	"github.com/homeware/paynotify/pkg/tool"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Save asynchronously persists an email delivery log. Nil input is ignored.
// Failures are logged and swallowed: delivery logging never fails a request.
func (s *Service) Save(ctx context.Context, entry *models.EmailDeliveryLog) {
	go func() {
		if entry == nil {
			return
		}
		if entry.ID == "" {
			entry.ID = tool.GenerateUUIDV7()
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save email delivery log: %v", err)
		}
	}()
}

var Module = fx.Options(
	fx.Provide(New),
)
