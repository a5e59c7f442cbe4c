package rules

import "errors"

// RejectReason код причины отказа (используется в метриках и логах)
type RejectReason string

const (
	ReasonInvalidInput            RejectReason = "invalid_input"
	ReasonInvalidDate             RejectReason = "invalid_date"
	ReasonSlotFull                RejectReason = "slot_full"
	ReasonCenterFull              RejectReason = "center_full"
	ReasonBeneficiaryLimitReached RejectReason = "beneficiary_limit_reached"
	ReasonDoseIntervalViolation   RejectReason = "dose_interval_violation"
	ReasonDoseCapacityFull        RejectReason = "dose_capacity_full"
	ReasonUnderAge                RejectReason = "under_age"
	ReasonDuplicateKey            RejectReason = "duplicate_key"
	ReasonInternalFault           RejectReason = "internal_fault"
)

var (
	// ErrInvalidInput возвращается при некорректных полях запроса
	ErrInvalidInput = errors.New("rules: invalid input")

	// ErrInvalidDate возвращается, когда дата вне окна записи
	ErrInvalidDate = errors.New("rules: date outside booking window")

	// ErrSlotFull возвращается, когда в слоте центра уже 10 записей
	ErrSlotFull = errors.New("rules: time slot is full")

	// ErrCenterFull возвращается, когда в центре на дату уже 30 записей
	ErrCenterFull = errors.New("rules: no more vaccinations available at this center on this date")

	// ErrBeneficiaryLimitReached возвращается, когда у получателя уже две записи
	ErrBeneficiaryLimitReached = errors.New("rules: beneficiary already has two appointments")

	// ErrDoseIntervalViolation возвращается, когда нет первой дозы или прошло меньше 15 дней
	ErrDoseIntervalViolation = errors.New("rules: at least 15 days must pass between the first and second doses")

	// ErrDoseCapacityFull возвращается, когда на дозу в центре на дату уже 15 записей
	ErrDoseCapacityFull = errors.New("rules: no more doses available at this center on this date")

	// ErrUnderAge возвращается, если получателю меньше 45 лет
	ErrUnderAge = errors.New("rules: beneficiary should be 45 or older")

	// ErrDuplicateKey возвращается, если получатель с таким SSN уже зарегистрирован
	ErrDuplicateKey = errors.New("rules: duplicate key")

	// ErrInternal возвращается при сбое обращения к хранилищу
	ErrInternal = errors.New("rules: internal fault")
)

var reasons = []struct {
	err    error
	reason RejectReason
}{
	{ErrInvalidInput, ReasonInvalidInput},
	{ErrInvalidDate, ReasonInvalidDate},
	{ErrSlotFull, ReasonSlotFull},
	{ErrCenterFull, ReasonCenterFull},
	{ErrBeneficiaryLimitReached, ReasonBeneficiaryLimitReached},
	{ErrDoseIntervalViolation, ReasonDoseIntervalViolation},
	{ErrDoseCapacityFull, ReasonDoseCapacityFull},
	{ErrUnderAge, ReasonUnderAge},
	{ErrDuplicateKey, ReasonDuplicateKey},
}

// Reason возвращает причину отказа для ошибки
// Всё, что не является нарушением правила, считается ReasonInternalFault
func Reason(err error) RejectReason {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternalFault
}

// IsRejection сообщает, что ошибка является отказом по правилу (клиентская ошибка)
func IsRejection(err error) bool {
	return err != nil && Reason(err) != ReasonInternalFault
}
