package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/%d - Failed to load booking: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
