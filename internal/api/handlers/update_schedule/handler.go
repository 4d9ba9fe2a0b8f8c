package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
)

const (
	msgInvalidSalonID     = "некорректный идентификатор салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/%d/schedule - Invalid request body: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), req.ToServiceRequest(salonID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidSchedule), errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /salons/%d/schedule - Invalid schedule: %v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /salons/%d/schedule - Failed to save schedule: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/%d/schedule - Schedule saved: %s-%s, %d min slots",
		salonID, result.OpenTime, result.CloseTime, result.SlotDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
