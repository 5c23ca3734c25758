package get_staff_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings/models"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidFilter  = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/bookings?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	req := &models.GetStaffBookingsRequest{StaffID: staffID}

	query := r.URL.Query()
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.EndDate = &endDate
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetStaffBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/bookings - Invalid filter: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /staff/{id}/bookings - Failed to get bookings: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
