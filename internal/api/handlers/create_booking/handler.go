package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	msgInvalidSalonID     = "некорректный идентификатор салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSalonNotFound      = "салон не найден"
	msgSlotNotFound       = "выбранный временной слот не существует"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgServicesNotFound   = "одна или несколько услуг не найдены"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/%d/bookings - Invalid request body: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID)
	if err != nil {
		h.logger.Warn("POST /salons/%d/bookings - Failed to parse request: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSalonNotFound):
			h.logger.Warn("POST /salons/%d/bookings - Salon not found", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /salons/%d/bookings - Slot not found: date=%s, time=%s",
				salonID, req.BookingDate, req.StartTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /salons/%d/bookings - Slot not available: date=%s, time=%s",
				salonID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServicesNotFound):
			h.logger.Warn("POST /salons/%d/bookings - Services not found: %v", salonID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServicesNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /salons/%d/bookings - Invalid input: %v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/%d/bookings - Failed to create booking: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/%d/bookings - Booking created: booking_id=%d, customer_id=%d",
		salonID, result.ID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
