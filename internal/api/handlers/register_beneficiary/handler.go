package register_beneficiary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VaccinationService/internal/api/handlers"
	"github.com/m04kA/SMC-VaccinationService/internal/rules"
)

const (
	msgInvalidInput   = "Invalid input"
	msgUnderAge       = "Beneficiary should be 45 or older"
	msgDuplicateEntry = "Beneficiary with this SSN is already registered"
)

type Handler struct {
	useCase RegisterBeneficiaryUseCase
	logger  Logger
}

func NewHandler(useCase RegisterBeneficiaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/beneficiaries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterBeneficiaryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /beneficiaries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /beneficiaries - Invalid dob %q: %v", req.DOB, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("POST /beneficiaries - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rules.ErrUnderAge):
			h.logger.Warn("POST /beneficiaries - Under age: dob=%s", req.DOB)
			handlers.RespondBadRequest(w, msgUnderAge)

		case errors.Is(err, rules.ErrDuplicateKey):
			h.logger.Warn("POST /beneficiaries - Duplicate SSN")
			handlers.RespondConflict(w, msgDuplicateEntry)

		default:
			h.logger.Error("POST /beneficiaries - Failed to register beneficiary: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /beneficiaries - Beneficiary registered: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
