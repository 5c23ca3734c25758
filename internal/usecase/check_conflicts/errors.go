package check_conflicts

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
