package block_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	slotsService "github.com/m04kA/SMC-SalonService/internal/service/slots"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidSalonID     = "некорректный идентификатор салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotFound       = "слот не найден"
	msgSlotBooked         = "слот занят бронированием, сначала отмените его"
	msgInvalidInput       = "некорректные данные блокировки"
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

// Handle POST /api/v1/salons/{salonId}/slots/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/%d/slots/block - Invalid request body: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	timeSlot, err := types.NewTimeStringFromString(req.TimeSlot)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	if err := h.service.Block(r.Context(), salonID, date, timeSlot, req.Reason); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("POST /salons/%d/slots/block - Slot not found: %s %s", salonID, req.Date, req.TimeSlot)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotBooked):
			h.logger.Warn("POST /salons/%d/slots/block - Slot is booked: %s %s", salonID, req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		case errors.Is(err, slotsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/%d/slots/block - Failed to block slot: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/%d/slots/block - Slot blocked: %s %s", salonID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
