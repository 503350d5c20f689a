package timeoff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/dbmetrics"
	"github.com/barbernet/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const pqUniqueViolation = "23505"

// Repository репозиторий выходных дней барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория выходных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет выходной. Дубликат по (барбер, дата) не перезаписывается,
// а возвращает ErrTimeOffExists.
func (r *Repository) Create(ctx context.Context, t *domain.TimeOff) (*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_offs").
		Columns("barber_id", "time_off_date", "reason").
		Values(t.BarberID, t.Date, t.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrTimeOffExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// Exists проверяет наличие выходного на дату
func (r *Repository) Exists(ctx context.Context, barberID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_offs").
		Where(squirrel.Eq{"barber_id": barberID, "time_off_date": date}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByBarber получает выходные барбера в порядке возрастания дат
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "barber_id", "time_off_date", "reason").
		From("time_offs").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("time_off_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	timeOffs := make([]*domain.TimeOff, 0)
	for rows.Next() {
		var t domain.TimeOff
		if err := rows.Scan(&t.ID, &t.BarberID, &t.Date, &t.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan row: %v", ErrScanRow, err)
		}
		timeOffs = append(timeOffs, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - rows error: %v", ErrScanRow, err)
	}

	return timeOffs, nil
}

// Delete удаляет выходной по паре (барбер, дата)
func (r *Repository) Delete(ctx context.Context, barberID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_offs").
		Where(squirrel.Eq{"barber_id": barberID, "time_off_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeOffNotFound
	}

	return nil
}
