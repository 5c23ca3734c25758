package update_payment

import (
	"context"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings/models"
)

type BookingService interface {
	UpdatePayment(ctx context.Context, bookingID int64, req *models.UpdatePaymentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
