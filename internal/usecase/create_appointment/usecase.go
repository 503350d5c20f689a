package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barbernet/booking-service/internal/domain"
	appointmentRepo "github.com/barbernet/booking-service/internal/infra/storage/appointment"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	checker         AvailabilityChecker
	mail            Mailer
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	checker AvailabilityChecker,
	mail Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		checker:         checker,
		mail:            mail,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// финальный арбитр при гонке - частичный уникальный индекс в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%d, service=%d, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и время не в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if domain.SameDay(req.Date, now) && !req.StartTime.After(timeofday.FromTime(now)) {
		uc.logger.Warn("CreateAppointment: slot %s today has already passed", req.StartTime)
		return nil, ErrTooLateToBook
	}

	// 3. Получаем услугу, запись только на активные услуги
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем мастера, запись только к активным мастерам
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CreateAppointment: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	var result *domain.Appointment

	// 5. Проверка доступности и вставка в сериализуемой транзакции.
	// Чтение записей внутри транзакции блокирует строки (FOR UPDATE).
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.checker.CheckSlot(txCtx, req.BarberID, req.Date, req.StartTime, service.DurationMinutes, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !check.Available {
			uc.logger.Warn("CreateAppointment: slot %s %s not available: %s",
				req.Date.Format(domain.DateFormat), req.StartTime, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, check.Reason)
		}

		// Длительность фиксируется на момент записи: EndTime не пересчитывается
		// при последующем изменении услуги
		appt := &domain.Appointment{
			Reference:     uuid.New(),
			ServiceID:     req.ServiceID,
			BarberID:      req.BarberID,
			Date:          domain.DateOnly(req.Date),
			StartTime:     req.StartTime,
			EndTime:       req.StartTime.AddMinutes(service.DurationMinutes),
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: lost the race for slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return fmt.Errorf("%w: slot was taken concurrently", ErrSlotNotAvailable)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d reference=%s",
		result.ID, result.Reference)

	// 6. Письмо клиенту после коммита, ошибка доставки не отменяет запись
	uc.sendConfirmation(result, barber.Name, service.Name)

	return &Response{
		ID:            result.ID,
		Reference:     result.Reference.String(),
		ServiceID:     result.ServiceID,
		BarberID:      result.BarberID,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}

func (uc *UseCase) sendConfirmation(appt *domain.Appointment, barberName, serviceName string) {
	if !uc.mail.Enabled() {
		return
	}

	err := uc.mail.SendAppointmentConfirmation(mailer.AppointmentMail{
		Reference:     appt.Reference.String(),
		CustomerEmail: appt.CustomerEmail,
		BarberName:    barberName,
		ServiceName:   serviceName,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation email for id=%d: %v", appt.ID, err)
	}
}
