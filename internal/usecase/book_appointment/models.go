package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// Request модель запроса на запись
type Request struct {
	BeneficiaryID int64         // ID получателя
	Date          time.Time     // Дата записи (без времени)
	TimeSlot      string        // Слот, например "10:00-11:00"
	Dose          int           // 1 или 2
	Center        domain.Center // Центр вакцинации
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	BeneficiaryID int64
	Date          time.Time
	TimeSlot      string
	Dose          int
	Center        domain.Center
	CreatedAt     time.Time
}
