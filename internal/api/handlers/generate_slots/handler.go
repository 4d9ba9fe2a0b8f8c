package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-SalonService/internal/usecase/generate_slots"
)

const (
	msgInvalidSalonID        = "некорректный идентификатор салона"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound         = "салон не найден"
	msgInvalidPeriod         = "некорректный период генерации"
	msgScheduleNotConfigured = "расписание салона не настроено"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/%d/slots/generate - Invalid request body: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID)
	if err != nil {
		h.logger.Warn("POST /salons/%d/slots/generate - Failed to parse dates: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrSalonNotFound):
			h.logger.Warn("POST /salons/%d/slots/generate - Salon not found", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, generateSlots.ErrInvalidPeriod), errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /salons/%d/slots/generate - Invalid period: %s..%s",
				salonID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, generateSlots.ErrScheduleNotConfigured):
			h.logger.Warn("POST /salons/%d/slots/generate - Schedule not configured", salonID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleNotConfigured)

		default:
			h.logger.Error("POST /salons/%d/slots/generate - Failed to generate slots: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/%d/slots/generate - Generated %d slots, skipped %d",
		salonID, result.Generated, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
