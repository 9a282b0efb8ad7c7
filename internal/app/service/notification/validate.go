package notification

import (
	"errors"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/homeware/paynotify/pkg/types"
)

// NewValidator returns a configured validator with the custom payment-status
// check registered and field names taken from json tags.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("payment_status", func(fl validatorv10.FieldLevel) bool {
		s := fl.Field().String()
		return strings.EqualFold(s, "SUCCESS") || strings.EqualFold(s, "FAILED")
	})
	return v
}

// Validate checks a notification. Structural field errors are accumulated
// into a single ValidationError; only a structurally valid record is then
// checked against the conditional failure-reason rule, which surfaces as the
// distinct ErrMissingFailureReason. No side effects.
func Validate(v *validatorv10.Validate, n *types.PaymentNotification) error {
	if err := v.Struct(n); err != nil {
		var ve validatorv10.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
			}
			return &ValidationError{Fields: fields}
		}
		return &ValidationError{Fields: []FieldError{{Field: "", Message: err.Error()}}}
	}

	if n.IsFailed() && (n.FailureReason == nil || strings.TrimSpace(*n.FailureReason) == "") {
		return ErrMissingFailureReason
	}
	return nil
}

var requiredMessages = map[string]string{
	"transactionId": "Transaction ID is required",
	"merchantEmail": "Merchant email is required",
	"merchantName":  "Merchant name is required",
	"amount":        "Amount is required",
	"currency":      "Currency is required",
	"paymentMethod": "Payment method is required",
	"paymentStatus": "Payment status is required",
}

func fieldMessage(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Merchant email must be a valid email address"
	case "payment_status":
		return "Payment status must be SUCCESS or FAILED"
	default:
		if m, ok := requiredMessages[fe.Field()]; ok {
			return m
		}
		return fe.Field() + " is invalid"
	}
}
