package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidTransition  = "недопустимый переход статуса"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := domain.BookingStatus(req.Status)
	if !status.IsValid() {
		h.logger.Warn("PATCH /bookings/%d/status - Unknown status: %q", bookingID, req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/status - Invalid transition: %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bookings/%d/status - Failed to update status: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - Status updated to %s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
