package reschedule_booking

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// Request модель запроса на перенос бронирования
// StaffID и ServiceID опциональны: nil означает "оставить как было"
type Request struct {
	BookingID int64            // ID бронирования
	Date      time.Time        // Новая дата
	StartTime types.TimeString // Новое время начала
	StaffID   *int64           // Новый мастер (опционально)
	ServiceID *int64           // Новая услуга (опционально)
	Notes     *string          // Обновленные заметки (опционально)
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID          int64            // ID бронирования
	StaffID     int64            // ID мастера
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	BookingDate time.Time        // Новая дата
	StartTime   types.TimeString // Новое время начала
	EndTime     types.TimeString // Новое время окончания
	Status      string           // Статус бронирования
	Payment     string           // Статус оплаты

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   string  // Имя клиента
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
