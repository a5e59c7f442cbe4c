package domain

// Дозы вакцины
const (
	FirstDose  = 1
	SecondDose = 2
)

// Ограничения записи
const (
	MaxAppointmentsPerSlot      = 10 // на (дата, слот, центр)
	MaxAppointmentsPerCenterDay = 30 // на (дата, центр), по всем дозам
	MaxAppointmentsPerDose      = 15 // на (дата, центр, доза)
	MaxAppointmentsPerPerson    = 2
	MinDaysBetweenDoses         = 15
	BookingWindowDays           = 90 // запись возможна на [сегодня, сегодня+90]
)

// Ограничения регистрации
const (
	MinBeneficiaryAge = 45
	SSNLength         = 9
	PhoneLength       = 10
	MaxNameLength     = 50
	MaxTimeSlotLength = 20
)

// DateFormat формат дат на границе API: DD-MM-YYYY
const DateFormat = "02-01-2006"
