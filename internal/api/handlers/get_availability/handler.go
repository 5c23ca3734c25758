package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	getAvailability "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/get_availability"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability?date=YYYY-MM-DD&slotDuration=15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Невалидная гранулярность молча заменяется дефолтной в use case
	slotDuration := 0
	if raw := r.URL.Query().Get("slotDuration"); raw != "" {
		slotDuration, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/availability - Invalid slot duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		StaffID:      staffID,
		Date:         date,
		SlotDuration: slotDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability - Invalid input: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /staff/{id}/availability - Failed to resolve grid: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
