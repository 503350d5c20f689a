package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/barbernet/booking-service/internal/domain"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	"github.com/barbernet/booking-service/internal/service/catalog/models"
)

// Service сервис каталога: мастера и услуги
type Service struct {
	barberRepo   BarberRepository
	serviceRepo  ServiceRepository
	ruleRepo     RuleRepository
	counter      AppointmentCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	ruleRepo RuleRepository,
	counter AppointmentCounter,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:   barberRepo,
		serviceRepo:  serviceRepo,
		ruleRepo:     ruleRepo,
		counter:      counter,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CreateBarber создает нового мастера, активного по умолчанию
func (s *Service) CreateBarber(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("CreateBarber: name=%s", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	created, err := s.barberRepo.Create(ctx, &domain.Barber{
		Name:     name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	})
	if err != nil {
		s.logger.Error("CreateBarber: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBarber: successfully created barber id=%d", created.ID)
	return models.FromDomainBarber(created), nil
}

// GetBarber получает мастера по ID
func (s *Service) GetBarber(ctx context.Context, id int64) (*models.BarberResponse, error) {
	barber, err := s.getBarber(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBarber(barber), nil
}

// ListBarbers возвращает мастеров, опционально только активных
func (s *Service) ListBarbers(ctx context.Context, onlyActive bool) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBarberList(barbers), nil
}

// UpdateBarber частично обновляет мастера. Деактивация, как и удаление,
// блокируется будущими подтвержденными записями.
func (s *Service) UpdateBarber(ctx context.Context, id int64, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("UpdateBarber: id=%d", id)

	barber, err := s.getBarber(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil && !*req.IsActive && barber.IsActive {
		if err := s.ensureBarberHasNoFutureAppointments(ctx, id); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		if len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
		}
		barber.Name = name
	}
	if req.Email != nil {
		barber.Email = req.Email
	}
	if req.Phone != nil {
		barber.Phone = req.Phone
	}
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := s.barberRepo.Update(ctx, barber); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateBarber: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBarber: successfully updated barber id=%d", id)
	return models.FromDomainBarber(barber), nil
}

// DeleteBarber удаляет мастера вместе с его расписанием и историей записей.
// Блокируется будущими подтвержденными записями: сначала их нужно отменить.
// Прошедшие и отмененные записи удалению не мешают.
func (s *Service) DeleteBarber(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBarber: id=%d", id)

	if _, err := s.getBarber(ctx, id); err != nil {
		return err
	}

	if err := s.ensureBarberHasNoFutureAppointments(ctx, id); err != nil {
		return err
	}

	if err := s.ruleRepo.DeleteByBarber(ctx, id); err != nil {
		s.logger.Error("DeleteBarber: failed to delete rules for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBarber - repository error: %v", ErrInternal, err)
	}

	if err := s.barberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return ErrBarberNotFound
		}
		s.logger.Error("DeleteBarber: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBarber: successfully deleted barber id=%d", id)
	return nil
}

// CreateService создает новую услугу, активную по умолчанию
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%s, duration=%d", req.Name, req.DurationMinutes)

	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.getService(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainService(service), nil
}

// ListServices возвращает услуги, опционально только активные
func (s *Service) ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// UpdateService частично обновляет услугу. Изменение длительности не
// трогает существующие записи: их длительность зафиксирована при создании.
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%d", id)

	service, err := s.getService(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil && !*req.IsActive && service.IsActive {
		if err := s.ensureServiceHasNoFutureAppointments(ctx, id); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := validateServiceFields(service.Name, service.Price, service.DurationMinutes); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(service), nil
}

// DeleteService удаляет услугу вместе с историей записей. Блокируется
// будущими подтвержденными записями.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: id=%d", id)

	if _, err := s.getService(ctx, id); err != nil {
		return err
	}

	if err := s.ensureServiceHasNoFutureAppointments(ctx, id); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%d", id)
	return nil
}

func (s *Service) getBarber(ctx context.Context, id int64) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("catalog: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("catalog: failed to get barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	return barber, nil
}

func (s *Service) getService(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("catalog: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("catalog: failed to get service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	return service, nil
}

func (s *Service) ensureBarberHasNoFutureAppointments(ctx context.Context, id int64) error {
	count, err := s.counter.CountFutureConfirmedByBarber(ctx, id, domain.DateOnly(s.timeProvider.Now()))
	if err != nil {
		s.logger.Error("catalog: failed to count appointments for barber id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("catalog: barber id=%d has %d future confirmed appointments", id, count)
		return fmt.Errorf("%w: barber has %d future appointments", ErrHasFutureAppointments, count)
	}
	return nil
}

func (s *Service) ensureServiceHasNoFutureAppointments(ctx context.Context, id int64) error {
	count, err := s.counter.CountFutureConfirmedByService(ctx, id, domain.DateOnly(s.timeProvider.Now()))
	if err != nil {
		s.logger.Error("catalog: failed to count appointments for service id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("catalog: service id=%d has %d future confirmed appointments", id, count)
		return fmt.Errorf("%w: service has %d future appointments", ErrHasFutureAppointments, count)
	}
	return nil
}

func validateServiceFields(name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(strings.TrimSpace(name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
