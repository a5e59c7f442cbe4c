package register_beneficiary

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	registerBeneficiary "github.com/m04kA/SMC-VaccinationService/internal/usecase/register_beneficiary"
)

// RegisterBeneficiaryRequest HTTP request model
type RegisterBeneficiaryRequest struct {
	SSN   string `json:"ssn"`
	Name  string `json:"name"`
	DOB   string `json:"dob"` // "17-05-1970"
	Phone string `json:"phone"`
}

// BeneficiaryResponse HTTP response model
type BeneficiaryResponse struct {
	ID    int64  `json:"id"`
	SSN   string `json:"ssn"`
	Name  string `json:"name"`
	DOB   string `json:"dob"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterBeneficiaryRequest) ToUseCaseRequest() (*registerBeneficiary.Request, error) {
	dob, err := time.Parse(domain.DateFormat, r.DOB)
	if err != nil {
		return nil, err
	}

	return &registerBeneficiary.Request{
		SSN:   r.SSN,
		Name:  r.Name,
		DOB:   dob,
		Phone: r.Phone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *registerBeneficiary.Response) *BeneficiaryResponse {
	return &BeneficiaryResponse{
		ID:    resp.ID,
		SSN:   resp.SSN,
		Name:  resp.Name,
		DOB:   resp.DOB.Format(domain.DateFormat),
		Phone: resp.Phone,
	}
}
