package models

import (
	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
)

// BeneficiaryResponse ответ с данными получателя
type BeneficiaryResponse struct {
	ID    int64  `json:"id"`
	SSN   string `json:"ssn"`
	Name  string `json:"name"`
	DOB   string `json:"dob"` // "17-05-1970"
	Phone string `json:"phone"`
}

// BeneficiaryDetailsResponse получатель вместе с его записями
type BeneficiaryDetailsResponse struct {
	BeneficiaryResponse
	Appointments []*appointmentModels.AppointmentResponse `json:"appointments"`
}

// FromDomainBeneficiary конвертирует domain модель в response
func FromDomainBeneficiary(b *domain.Beneficiary) *BeneficiaryResponse {
	return &BeneficiaryResponse{
		ID:    b.ID,
		SSN:   b.SSN,
		Name:  b.Name,
		DOB:   b.DOB.Format(domain.DateFormat),
		Phone: b.Phone,
	}
}

// FromDomainBeneficiaryList конвертирует список получателей
func FromDomainBeneficiaryList(list []*domain.Beneficiary) []*BeneficiaryResponse {
	result := make([]*BeneficiaryResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomainBeneficiary(b))
	}
	return result
}
