package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeware/paynotify/internal/app/service/notification"
	"github.com/homeware/paynotify/internal/models"
	"github.com/homeware/paynotify/pkg/response"
	"github.com/homeware/paynotify/pkg/types"
)

// PaymentProcessor runs one payment notification through the full pipeline.
type PaymentProcessor interface {
	Process(ctx context.Context, n *types.PaymentNotification) (*models.PaymentRecord, error)
}

// ApiPaymentNotification handles POST /api/notifications/payment.
func ApiPaymentNotification(svc PaymentProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PaymentNotification
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(
				http.StatusBadRequest, "Bad Request",
				"Invalid JSON format: "+err.Error(), c.Request.URL.Path))
			return
		}

		if _, err := svc.Process(c.Request.Context(), &req); err != nil {
			writeError(c, err)
			return
		}

		c.String(http.StatusOK, "Payment successful !!!")
	}
}

// writeError maps the pipeline taxonomy onto the HTTP contract. Every error
// translates to exactly one caller-visible category; raw collaborator errors
// never cross this boundary.
func writeError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var ve *notification.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]response.FieldError, 0, len(ve.Fields))
		for _, fe := range ve.Fields {
			fields = append(fields, response.FieldError{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, response.NewValidationError(
			http.StatusBadRequest, "Validation Failed", "Invalid input data", path, fields))
	case errors.Is(err, notification.ErrMissingFailureReason):
		c.JSON(http.StatusBadRequest, response.NewError(
			http.StatusBadRequest, "Bad Request",
			notification.ErrMissingFailureReason.Error(), path))
	case errors.Is(err, notification.ErrDuplicateTransaction):
		c.JSON(http.StatusConflict, response.NewError(
			http.StatusConflict, "Conflict",
			notification.ErrDuplicateTransaction.Error(), path))
	case errors.Is(err, notification.ErrPersistence):
		c.JSON(http.StatusInternalServerError, response.NewError(
			http.StatusInternalServerError, "Database Error",
			"An error occurred while accessing the database", path))
	case errors.Is(err, notification.ErrDispatch):
		c.JSON(http.StatusInternalServerError, response.NewError(
			http.StatusInternalServerError, "Email Service Error",
			"Failed to send email notification", path))
	default:
		c.JSON(http.StatusInternalServerError, response.NewError(
			http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred", path))
	}
}

func RegisterNotificationRoutes(r gin.IRouter, svc PaymentProcessor) {
	// Mount under provided group, expected at "/api/notifications"
	r.POST("/payment", ApiPaymentNotification(svc))
}
