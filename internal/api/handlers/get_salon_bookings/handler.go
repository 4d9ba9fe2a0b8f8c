package get_salon_bookings

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
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/bookings?date=YYYY-MM-DD
// Параметр date опционален: без него возвращается вся история салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.ListBySalon(r.Context(), salonID, date)
	if err != nil {
		h.logger.Error("GET /salons/%d/bookings - Failed to load bookings: %v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
