package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VaccinationService/pkg/psqlbuilder"
)

const (
	tableName = "appointments"

	// foreignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
	foreignKeyViolation = "23503"

	sqlDateFormat = "2006-01-02"
)

var columns = []string{
	"id",
	"beneficiary_id",
	"date",
	"time_slot",
	"dose",
	"center",
	"created_at",
}

// Repository репозиторий для работы с записями на вакцинацию
// Реализует rules.Lookup: счётчики выполняются через транзакцию из контекста,
// если она есть
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись на дозу
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("beneficiary_id", "date", "time_slot", "dose", "center").
		Values(a.BeneficiaryID, a.Date.Format(sqlDateFormat), a.TimeSlot, a.Dose, string(a.Center)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, ErrBeneficiaryNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time

	return a, nil
}

// CountBySlot число записей на (дата, слот, центр)
func (r *Repository) CountBySlot(ctx context.Context, date time.Time, timeSlot string, center domain.Center) (int, error) {
	return r.count(ctx, "CountBySlot", squirrel.Eq{
		"date":      date.Format(sqlDateFormat),
		"time_slot": timeSlot,
		"center":    string(center),
	})
}

// CountByCenter число записей на (дата, центр) по всем дозам
func (r *Repository) CountByCenter(ctx context.Context, date time.Time, center domain.Center) (int, error) {
	return r.count(ctx, "CountByCenter", squirrel.Eq{
		"date":   date.Format(sqlDateFormat),
		"center": string(center),
	})
}

// CountByBeneficiary число записей получателя за всё время
func (r *Repository) CountByBeneficiary(ctx context.Context, beneficiaryID int64) (int, error) {
	return r.count(ctx, "CountByBeneficiary", squirrel.Eq{"beneficiary_id": beneficiaryID})
}

// CountByDose число записей на (дата, центр, доза)
func (r *Repository) CountByDose(ctx context.Context, date time.Time, center domain.Center, dose int) (int, error) {
	return r.count(ctx, "CountByDose", squirrel.Eq{
		"date":   date.Format(sqlDateFormat),
		"center": string(center),
		"dose":   dose,
	})
}

// GetFirstDose возвращает самую раннюю запись получателя на первую дозу
// или nil, если такой записи нет
func (r *Repository) GetFirstDose(ctx context.Context, beneficiaryID int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"beneficiary_id": beneficiaryID, "dose": domain.FirstDose}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstDose - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstDose - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// List получает записи с фильтрацией
// Все поля фильтра опциональны; пустой фильтр возвращает все записи
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.BeneficiaryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"beneficiary_id": *filter.BeneficiaryID})
	}
	if filter.Center != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"center": string(*filter.Center)})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(sqlDateFormat)})
	}

	query, args, err := selectBuilder.
		OrderBy("date ASC", "time_slot ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) count(ctx context.Context, op string, where squirrel.Eq) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, op, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %w", ErrScanRow, op, err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a         domain.Appointment
		center    string
		createdAt sql.NullTime
	)

	if err := row.Scan(&a.ID, &a.BeneficiaryID, &a.Date, &a.TimeSlot, &a.Dose, &center, &createdAt); err != nil {
		return nil, err
	}

	a.Center = domain.Center(center)
	a.CreatedAt = createdAt.Time
	return &a, nil
}
