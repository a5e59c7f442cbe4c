package beneficiary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VaccinationService/pkg/psqlbuilder"
)

const (
	tableName = "beneficiaries"

	// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"ssn",
	"name",
	"dob",
	"phone",
	"created_at",
}

// Repository репозиторий для работы с получателями вакцины
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория получателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет получателя
// Дубликат SSN (уникальный индекс) возвращается как ErrDuplicateSSN
func (r *Repository) Create(ctx context.Context, b *domain.Beneficiary) (*domain.Beneficiary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("ssn", "name", "dob", "phone").
		Values(b.SSN, b.Name, sqlDate(b), b.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateSSN
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает получателя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Beneficiary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBeneficiary(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBeneficiaryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan beneficiary: %w", ErrScanRow, err)
	}

	return b, nil
}

// Exists проверяет, что получатель с указанным ID зарегистрирован
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %w", ErrScanRow, err)
	}

	return exists, nil
}

// List получает всех получателей в порядке регистрации
func (r *Repository) List(ctx context.Context) ([]*domain.Beneficiary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Beneficiary, 0)
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBeneficiary(row scanner) (*domain.Beneficiary, error) {
	var (
		b         domain.Beneficiary
		createdAt sql.NullTime
	)

	if err := row.Scan(&b.ID, &b.SSN, &b.Name, &b.DOB, &b.Phone, &createdAt); err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

// sqlDate передаёт дату строкой, чтобы часовой пояс сессии не сдвинул её
func sqlDate(b *domain.Beneficiary) string {
	return b.DOB.Format("2006-01-02")
}
