package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barbernet/booking-service/internal/domain"
	appointmentRepo "github.com/barbernet/booking-service/internal/infra/storage/appointment"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	"github.com/barbernet/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями (админка)
type Service struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	mail            Mailer
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	mail Mailer,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		mail:            mail,
		logger:          logger,
	}
}

// GetByID получает запись по внутреннему ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByReference получает запись по публичному идентификатору (UUID).
// Клиент получает reference в письме-подтверждении.
func (s *Service) GetByReference(ctx context.Context, ref string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByReference: fetching appointment reference=%s", ref)

	if _, err := uuid.Parse(ref); err != nil {
		s.logger.Warn("GetByReference: malformed reference=%s", ref)
		return nil, fmt.Errorf("%w: malformed reference", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByReference: appointment reference=%s not found", ref)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией по мастеру, услуге, периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, barber=%v, service=%v, status=%v",
		req.BarberID, req.ServiceID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Повторная отмена уже отмененной записи -
// успешный no-op: слот и так свободен, письмо не отправляется.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.IsCancelled() {
		s.logger.Info("Cancel: appointment id=%d is already cancelled", id)
		return nil
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	s.sendCancellationMail(ctx, appt)

	return nil
}

// sendCancellationMail отправляет письмо об отмене, ошибка доставки
// не отменяет результат операции
func (s *Service) sendCancellationMail(ctx context.Context, appt *domain.Appointment) {
	if !s.mail.Enabled() {
		return
	}

	barberName := ""
	if barber, err := s.barberRepo.GetByID(ctx, appt.BarberID); err == nil {
		barberName = barber.Name
	}
	serviceName := ""
	if service, err := s.serviceRepo.GetByID(ctx, appt.ServiceID); err == nil {
		serviceName = service.Name
	}

	err := s.mail.SendAppointmentCancellation(mailer.AppointmentMail{
		Reference:     appt.Reference.String(),
		CustomerEmail: appt.CustomerEmail,
		BarberName:    barberName,
		ServiceName:   serviceName,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	})
	if err != nil {
		s.logger.Error("Cancel: failed to send cancellation email for id=%d: %v", appt.ID, err)
	}
}
