package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers"
	rescheduleBooking "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры переноса"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgNotFound           = "бронирование не найдено"
	msgCannotReschedule   = "бронирование нельзя перенести в текущем статусе"
	msgStaffNotFound      = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgShiftViolation     = "интервал выходит за пределы смены мастера"
	msgStaffConflict      = "у мастера уже есть бронирование на это время"
	msgClientConflict     = "у клиента уже есть бронирование на это время"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, bookingID, err)
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking rescheduled successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, bookingID int64, err error) {
	var conflictErr *rescheduleBooking.ConflictError

	switch {
	case errors.Is(err, rescheduleBooking.ErrInvalidInput):
		h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, rescheduleBooking.ErrInvalidDate):
		h.logger.Warn("PUT /bookings/{id} - Booking date in the past: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgInvalidBookingDate)

	case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
		h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
		h.logger.Warn("PUT /bookings/{id} - Cannot reschedule: booking_id=%d: %v", bookingID, err)
		handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

	case errors.Is(err, rescheduleBooking.ErrStaffNotFound):
		h.logger.Warn("PUT /bookings/{id} - Staff not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, rescheduleBooking.ErrServiceNotFound):
		h.logger.Warn("PUT /bookings/{id} - Service not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, rescheduleBooking.ErrShiftViolation):
		h.logger.Warn("PUT /bookings/{id} - Shift violation: booking_id=%d: %v", bookingID, err)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgShiftViolation, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgShiftViolation)

	case errors.Is(err, rescheduleBooking.ErrStaffConflict):
		h.logger.Warn("PUT /bookings/{id} - Staff conflict: booking_id=%d", bookingID)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgStaffConflict, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgStaffConflict)

	case errors.Is(err, rescheduleBooking.ErrClientConflict):
		h.logger.Warn("PUT /bookings/{id} - Client conflict: booking_id=%d", bookingID)
		if errors.As(err, &conflictErr) {
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgClientConflict, conflictErr))
			return
		}
		handlers.RespondError(w, http.StatusConflict, msgClientConflict)

	default:
		h.logger.Error("PUT /bookings/{id} - Failed to reschedule booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
