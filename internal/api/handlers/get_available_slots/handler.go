package get_available_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgInvalidSalonID = "некорректный идентификатор салона"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
)

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

// Handle GET /api/v1/salons/{salonId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetAvailable(r.Context(), salonID, date)
	if err != nil {
		h.logger.Error("GET /salons/%d/slots - Failed to load slots: %v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
