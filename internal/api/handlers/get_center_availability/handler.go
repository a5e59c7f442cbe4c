package get_center_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
	getCenterAvailability "github.com/m04kA/SMC-VaccinationService/internal/usecase/get_center_availability"
)

const (
	msgInvalidInput = "Invalid input"
	msgInvalidDate  = "Invalid date"
)

type Handler struct {
	useCase GetCenterAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCenterAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{center}/availability
// Query params: date (обязательный, DD-MM-YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	center := mux.Vars(r)["center"]
	dateStr := r.URL.Query().Get("date")

	useCaseReq, err := ToUseCaseRequest(center, dateStr)
	if err != nil {
		h.logger.Warn("GET /centers/{center}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCenterAvailability.ErrInvalidCenter):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCenterAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /centers/{center}/availability - Failed: center=%s, error=%v", center, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
