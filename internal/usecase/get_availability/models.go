package get_availability

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	StaffID      int64     // ID мастера
	Date         time.Time // Дата
	SlotDuration int       // Гранулярность сетки в минутах (0 — дефолт)
}

// Response модель ответа с разрешенной сеткой
type Response struct {
	StaffID      int64
	Date         time.Time
	SlotDuration int
	Slots        []domain.AvailabilitySlot
}
