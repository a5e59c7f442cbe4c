package beneficiary

import "errors"

var (
	// ErrBeneficiaryNotFound возвращается, когда получатель не найден
	ErrBeneficiaryNotFound = errors.New("beneficiary.repository: beneficiary not found")

	// ErrDuplicateSSN возвращается при вставке получателя с уже существующим SSN
	ErrDuplicateSSN = errors.New("beneficiary.repository: beneficiary with this ssn already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("beneficiary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("beneficiary.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("beneficiary.repository: failed to scan row")
)
