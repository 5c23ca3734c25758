package directory

// Staff модель мастера из справочника
type Staff struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Customer модель клиента из справочника
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Service модель услуги из справочника
// DurationMinutes определяет end_time бронирования
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// ErrorResponse модель ошибки справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
