package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/homeware/paynotify/internal/app/api/server"
	delivery "github.com/homeware/paynotify/internal/app/service/delivery_log"
	"github.com/homeware/paynotify/internal/app/service/notification"
	"github.com/homeware/paynotify/internal/platform/db"
	"github.com/homeware/paynotify/internal/platform/mail"
	"github.com/homeware/paynotify/pkg/config"
	"github.com/homeware/paynotify/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	mail.Module,
	delivery.Module,
	notification.Module,
	server.Module,
)
