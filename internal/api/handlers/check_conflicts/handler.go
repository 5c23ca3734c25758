package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers"
	checkConflicts "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/conflicts/check
// Сухой прогон детектора: ничего не пишет, возвращает конфликты и альтернативы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /conflicts/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidInput):
			h.logger.Warn("POST /conflicts/check - Invalid input: staff_id=%d: %v", req.StaffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /conflicts/check - Failed to check conflicts: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
