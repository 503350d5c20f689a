package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/dbmetrics"
	"github.com/barbernet/booking-service/pkg/psqlbuilder"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

type DBExecutor = dbmetrics.DBExecutor

var ruleColumns = []string{
	"id",
	"barber_id",
	"weekday",
	"start_time",
	"end_time",
	"lunch_start",
	"lunch_end",
	"is_closed",
}

// Repository репозиторий недельных правил рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет правило для пары (барбер, день недели).
// Уникальный индекс по этой паре гарантирует не более одного правила,
// семантика записи - insert-or-update.
func (r *Repository) Upsert(ctx context.Context, rule *domain.WorkingHourRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("barber_id", "weekday", "start_time", "end_time", "lunch_start", "lunch_end", "is_closed").
		Values(
			rule.BarberID,
			int(rule.Weekday),
			rule.StartTime,
			rule.EndTime,
			lunchValue(rule.LunchStart),
			lunchValue(rule.LunchEnd),
			rule.Closed,
		).
		Suffix(`ON CONFLICT (barber_id, weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			is_closed = EXCLUDED.is_closed`).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByBarberAndWeekday получает правило барбера на день недели
func (r *Repository) GetByBarberAndWeekday(ctx context.Context, barberID int64, weekday time.Weekday) (*domain.WorkingHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("working_hours").
		Where(squirrel.Eq{"barber_id": barberID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndWeekday - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByBarber получает все настроенные правила барбера
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.WorkingHourRule, error) {
	return r.list(ctx, squirrel.Eq{"barber_id": barberID}, "ListByBarber")
}

// ListByBarbers получает правила нескольких барберов
// (для агрегированного расписания на витрине)
func (r *Repository) ListByBarbers(ctx context.Context, barberIDs []int64) ([]*domain.WorkingHourRule, error) {
	if len(barberIDs) == 0 {
		return []*domain.WorkingHourRule{}, nil
	}
	return r.list(ctx, squirrel.Eq{"barber_id": barberIDs}, "ListByBarbers")
}

func (r *Repository) list(ctx context.Context, pred squirrel.Eq, op string) ([]*domain.WorkingHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("working_hours").
		Where(pred).
		OrderBy("barber_id ASC, weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.WorkingHourRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rules, nil
}

// DeleteByBarber удаляет все правила барбера (при удалении барбера)
func (r *Repository) DeleteByBarber(ctx context.Context, barberID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByBarber - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBarber - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.WorkingHourRule, error) {
	var rule domain.WorkingHourRule
	var weekday int
	var lunchStart, lunchEnd sql.NullInt64

	err := row.Scan(
		&rule.ID,
		&rule.BarberID,
		&weekday,
		&rule.StartTime,
		&rule.EndTime,
		&lunchStart,
		&lunchEnd,
		&rule.Closed,
	)
	if err != nil {
		return nil, err
	}

	rule.Weekday = time.Weekday(weekday)
	if lunchStart.Valid {
		v := timeofday.TimeOfDay(lunchStart.Int64)
		rule.LunchStart = &v
	}
	if lunchEnd.Valid {
		v := timeofday.TimeOfDay(lunchEnd.Int64)
		rule.LunchEnd = &v
	}

	return &rule, nil
}

func lunchValue(t *timeofday.TimeOfDay) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
