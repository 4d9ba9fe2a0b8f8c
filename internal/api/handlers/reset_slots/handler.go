package reset_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgInvalidSalonID = "некорректный идентификатор салона"

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/salons/{salonId}/slots
// Удаляет свободные и заблокированные слоты, занятые остаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.Reset(r.Context(), salonID)
	if err != nil {
		h.logger.Error("DELETE /salons/%d/slots - Failed to reset slots: %v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /salons/%d/slots - Deleted %d slots", salonID, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
