package get_beneficiary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
	"github.com/m04kA/SMC-VaccinationService/internal/service/beneficiaries"
)

const (
	msgInvalidBeneficiaryID = "Invalid beneficiary id"
	msgNotFound             = "Beneficiary not found"
)

type Handler struct {
	service BeneficiaryService
	logger  Logger
}

func NewHandler(service BeneficiaryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/beneficiaries/{beneficiaryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	beneficiaryID, err := strconv.ParseInt(vars["beneficiaryId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /beneficiaries/{id} - Invalid beneficiary ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBeneficiaryID)
		return
	}

	result, err := h.service.GetByID(r.Context(), beneficiaryID)
	if err != nil {
		switch {
		case errors.Is(err, beneficiaries.ErrBeneficiaryNotFound):
			h.logger.Warn("GET /beneficiaries/{id} - Beneficiary not found: id=%d", beneficiaryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /beneficiaries/{id} - Failed to get beneficiary: id=%d, error=%v", beneficiaryID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /beneficiaries/{id} - Beneficiary retrieved: id=%d, appointments=%d",
		beneficiaryID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
