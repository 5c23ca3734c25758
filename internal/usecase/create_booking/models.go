package create_booking

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	StaffID   int64            // ID мастера
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	StaffID     int64            // ID мастера
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания (начало + длительность услуги)
	Status      string           // Статус бронирования
	Payment     string           // Статус оплаты

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   string  // Имя клиента
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
