package get_beneficiaries

import (
	"net/http"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
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

// Handle GET /api/v1/beneficiaries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /beneficiaries - Failed to list beneficiaries: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("GET /beneficiaries - Beneficiaries retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
