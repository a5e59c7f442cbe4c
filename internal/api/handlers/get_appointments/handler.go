package get_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments"
)

const msgInvalidParams = "Invalid input"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: beneficiaryId, center, date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("beneficiaryId"), query.Get("center"), query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
