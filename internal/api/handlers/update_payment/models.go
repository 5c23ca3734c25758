package update_payment

import "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings/models"

// UpdatePaymentRequest HTTP request model
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePaymentRequest) ToServiceRequest() *models.UpdatePaymentRequest {
	return &models.UpdatePaymentRequest{
		PaymentStatus: r.PaymentStatus,
	}
}
