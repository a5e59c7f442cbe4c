package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
	"github.com/m04kA/SMC-VaccinationService/internal/rules"
	bookAppointment "github.com/m04kA/SMC-VaccinationService/internal/usecase/book_appointment"
)

const (
	msgInvalidInput            = "Invalid input"
	msgInvalidDate             = "Invalid date"
	msgSlotFull                = "Time slot is full"
	msgCenterFull              = "No more vaccinations available at this center on this date"
	msgBeneficiaryLimitReached = "Beneficiary already has two appointments"
	msgDoseInterval            = "At least 15 days must pass between the first and second doses"
	msgDoseCapacityFull        = "No more doses available at this center on this date"
	msgBeneficiaryNotFound     = "Beneficiary not found"
	msgBusy                    = "Booking is busy, please retry"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rules.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rules.ErrSlotFull):
			handlers.RespondBadRequest(w, msgSlotFull)

		case errors.Is(err, rules.ErrCenterFull):
			handlers.RespondBadRequest(w, msgCenterFull)

		case errors.Is(err, rules.ErrBeneficiaryLimitReached):
			handlers.RespondBadRequest(w, msgBeneficiaryLimitReached)

		case errors.Is(err, rules.ErrDoseIntervalViolation):
			handlers.RespondBadRequest(w, msgDoseInterval)

		case errors.Is(err, rules.ErrDoseCapacityFull):
			handlers.RespondBadRequest(w, msgDoseCapacityFull)

		case errors.Is(err, bookAppointment.ErrBeneficiaryNotFound):
			handlers.RespondNotFound(w, msgBeneficiaryNotFound)

		case errors.Is(err, bookAppointment.ErrLockTimeout):
			h.logger.Warn("POST /appointments - Lock timeout: beneficiary_id=%d, center=%s", req.BeneficiaryID, req.Center)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("POST /appointments - Failed to book: beneficiary_id=%d, error=%v", req.BeneficiaryID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, beneficiary_id=%d", result.ID, result.BeneficiaryID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
