package directory

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден в справочнике
	ErrStaffNotFound = errors.New("directory client: staff not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден в справочнике
	ErrCustomerNotFound = errors.New("directory client: customer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("directory client: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
