package domain

import "time"

// Beneficiary represents a person registered for vaccination
type Beneficiary struct {
	ID        int64
	SSN       string // национальный идентификатор, ровно 9 цифр, уникален
	Name      string
	DOB       time.Time
	Phone     string // ровно 10 цифр
	CreatedAt time.Time
}

// AgeInYear возвращает возраст как разницу годов (без учёта месяца и дня рождения)
func (b *Beneficiary) AgeInYear(now time.Time) int {
	return now.Year() - b.DOB.Year()
}
