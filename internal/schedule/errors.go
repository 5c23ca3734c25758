package schedule

import "errors"

var (
	// ErrShiftRangeNotFound возвращается, когда на дату нет назначенного диапазона смен
	ErrShiftRangeNotFound = errors.New("schedule: shift range not found")

	// ErrDailyLogNotFound возвращается, когда на дату нет журнала смены
	ErrDailyLogNotFound = errors.New("schedule: daily shift log not found")

	// ErrInvalidInterval возвращается при некорректном интервале запроса
	ErrInvalidInterval = errors.New("schedule: invalid time interval")
)
