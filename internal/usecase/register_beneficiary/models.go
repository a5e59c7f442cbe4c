package register_beneficiary

import "time"

// Request модель запроса на регистрацию получателя
type Request struct {
	SSN   string    // Национальный идентификатор, 9 цифр
	Name  string    // Имя
	DOB   time.Time // Дата рождения
	Phone string    // Телефон, 10 цифр
}

// Response модель ответа с зарегистрированным получателем
type Response struct {
	ID        int64
	SSN       string
	Name      string
	DOB       time.Time
	Phone     string
	CreatedAt time.Time
}
