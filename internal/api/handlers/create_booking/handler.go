package create_booking

import (
	"errors"
	"net/http"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers"
	createBooking "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgStaffNotFound      = "мастер не найден"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgShiftViolation     = "интервал выходит за пределы смены мастера"
	msgStaffConflict      = "у мастера уже есть бронирование на это время"
	msgClientConflict     = "у клиента уже есть бронирование на это время"
	msgUnpaidBlock        = "у клиента есть неоплаченные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, staff_id=%d, client_id=%d",
		result.ID, req.StaffID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	// Типизированные отказы несут причину и блокирующие бронирования
	var conflictErr *createBooking.ConflictError

	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: staff_id=%d, client_id=%d: %v", req.StaffID, req.ClientID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("POST /bookings - Booking date in the past: staff_id=%d, client_id=%d", req.StaffID, req.ClientID)
		handlers.RespondBadRequest(w, msgInvalidBookingDate)

	case errors.Is(err, createBooking.ErrStaffNotFound):
		h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, createBooking.ErrClientNotFound):
		h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
		handlers.RespondNotFound(w, msgClientNotFound)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrShiftViolation):
		h.logger.Warn("POST /bookings - Shift violation: staff_id=%d: %v", req.StaffID, err)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgShiftViolation, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgShiftViolation)

	case errors.Is(err, createBooking.ErrStaffConflict):
		h.logger.Warn("POST /bookings - Staff conflict: staff_id=%d", req.StaffID)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgStaffConflict, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgStaffConflict)

	case errors.Is(err, createBooking.ErrClientConflict):
		h.logger.Warn("POST /bookings - Client conflict: client_id=%d", req.ClientID)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgClientConflict, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgClientConflict)

	case errors.Is(err, createBooking.ErrUnpaidBlock):
		h.logger.Warn("POST /bookings - Unpaid block: client_id=%d", req.ClientID)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgUnpaidBlock, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgUnpaidBlock)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: staff_id=%d, client_id=%d, error=%v",
			req.StaffID, req.ClientID, err)
		handlers.RespondInternalError(w)
	}
}
