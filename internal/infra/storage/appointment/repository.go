package appointment

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
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"reference",
	"service_id",
	"barber_id",
	"appointment_date",
	"start_time",
	"end_time",
	"customer_email",
	"customer_phone",
	"status",
	"created_at",
}

// Repository репозиторий для работы с записями на стрижку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись. Если в контексте передана активная
// транзакция, использует её.
//
// Частичный уникальный индекс (barber_id, appointment_date, start_time)
// WHERE status = 'confirmed' гарантирует, что из двух одновременных
// бронирований одного слота успешным будет ровно одно: проигравшая
// вставка получает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"reference",
			"service_id",
			"barber_id",
			"appointment_date",
			"start_time",
			"end_time",
			"customer_email",
			"customer_phone",
			"status",
		).
		Values(
			appt.Reference,
			appt.ServiceID,
			appt.BarberID,
			appt.Date,
			appt.StartTime,
			appt.EndTime,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByReference получает запись по публичному идентификатору
func (r *Repository) GetByReference(ctx context.Context, ref string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"reference": ref}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByReference")
}

// ListConfirmedByBarberAndDate получает подтвержденные записи барбера на дату.
// Внутри транзакции выборка блокируется FOR UPDATE - это закрывает гонку
// между проверкой доступности и вставкой новой записи.
func (r *Repository) ListConfirmedByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"barber_id":        barberID,
			"appointment_date": date,
			"status":           domain.StatusConfirmed,
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListWithFilter получает записи с гибкой фильтрацией по барберу,
// услуге, периоду и статусу (для админки)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	// Для конкретной даты сортируем по времени, иначе - сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Cancel помечает запись отмененной. Строка не удаляется - история
// сохраняется для отчетности и уведомлений.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Reschedule переносит запись на новую дату/время и возвращает её
// в статус confirmed одним UPDATE (без частичных мутаций)
func (r *Repository) Reschedule(ctx context.Context, id int64, date time.Time, start, end timeofday.TimeOfDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", date).
		Set("start_time", start).
		Set("end_time", end).
		Set("status", domain.StatusConfirmed).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountFutureConfirmedByBarber считает будущие подтвержденные записи барбера.
// Используется админкой для запрета удаления барбера с активными записями.
func (r *Repository) CountFutureConfirmedByBarber(ctx context.Context, barberID int64, from time.Time) (int, error) {
	return r.countFutureConfirmed(ctx, squirrel.Eq{"barber_id": barberID}, from, "CountFutureConfirmedByBarber")
}

// CountFutureConfirmedByService считает будущие подтвержденные записи на услугу.
// Используется для запрета удаления/деактивации услуги.
func (r *Repository) CountFutureConfirmedByService(ctx context.Context, serviceID int64, from time.Time) (int, error) {
	return r.countFutureConfirmed(ctx, squirrel.Eq{"service_id": serviceID}, from, "CountFutureConfirmedByService")
}

func (r *Repository) countFutureConfirmed(ctx context.Context, pred squirrel.Eq, from time.Time, op string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(pred).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"appointment_date": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count, nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Reference,
		&appt.ServiceID,
		&appt.BarberID,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&appt.CustomerEmail,
		&appt.CustomerPhone,
		&appt.Status,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Reference,
			&appt.ServiceID,
			&appt.BarberID,
			&appt.Date,
			&appt.StartTime,
			&appt.EndTime,
			&appt.CustomerEmail,
			&appt.CustomerPhone,
			&appt.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального
// ограничения PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
