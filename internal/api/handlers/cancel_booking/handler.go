package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgCannotBeCancelled = "бронирование нельзя отменить в текущем статусе"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/cancel - Cannot cancel: %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotBeCancelled)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - Failed to cancel booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - Booking cancelled", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
