package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbernet/booking-service/internal/domain"
	appointmentRepo "github.com/barbernet/booking-service/internal/infra/storage/appointment"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	"github.com/barbernet/booking-service/pkg/ptr"
)

// UseCase use case для переноса записи администратором
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	checker         AvailabilityChecker
	mail            Mailer
	txManager       TransactionManager
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
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи.
// Длительность берется из самой записи (EndTime - StartTime), а не из
// текущей услуги. Перенос отмененной записи разрешен и снова делает ее
// подтвержденной. При конфликте запись остается без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, date=%s, time=%s",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment
	var previous domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		previous = *appt
		duration := appt.DurationMinutes()

		check, err := uc.checker.CheckSlot(txCtx, appt.BarberID, req.Date, req.StartTime, duration, ptr.Ptr(appt.ID))
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !check.Available {
			uc.logger.Warn("RescheduleAppointment: slot %s %s not available: %s",
				req.Date.Format(domain.DateFormat), req.StartTime, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, check.Reason)
		}

		newEnd := req.StartTime.AddMinutes(duration)
		err = uc.appointmentRepo.Reschedule(txCtx, appt.ID, domain.DateOnly(req.Date), req.StartTime, newEnd)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleAppointment: lost the race for slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return fmt.Errorf("%w: slot was taken concurrently", ErrSlotNotAvailable)
			}
			uc.logger.Error("RescheduleAppointment: failed to reschedule id=%d: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		updated := *appt
		updated.Date = domain.DateOnly(req.Date)
		updated.StartTime = req.StartTime
		updated.EndTime = newEnd
		updated.Status = domain.StatusConfirmed
		result = &updated

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)

	uc.sendRescheduleMail(ctx, result, &previous)

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
	}, nil
}

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	return nil
}

func (uc *UseCase) sendRescheduleMail(ctx context.Context, appt *domain.Appointment, old *domain.Appointment) {
	if !uc.mail.Enabled() {
		return
	}

	barberName := ""
	if barber, err := uc.barberRepo.GetByID(ctx, appt.BarberID); err == nil {
		barberName = barber.Name
	}
	serviceName := ""
	if service, err := uc.serviceRepo.GetByID(ctx, appt.ServiceID); err == nil {
		serviceName = service.Name
	}

	err := uc.mail.SendAppointmentReschedule(mailer.RescheduleMail{
		AppointmentMail: mailer.AppointmentMail{
			Reference:     appt.Reference.String(),
			CustomerEmail: appt.CustomerEmail,
			BarberName:    barberName,
			ServiceName:   serviceName,
			Date:          appt.Date,
			StartTime:     appt.StartTime,
			EndTime:       appt.EndTime,
		},
		OldDate:      old.Date,
		OldStartTime: old.StartTime,
	})
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to send reschedule email for id=%d: %v", appt.ID, err)
	}
}
