package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbernet/booking-service/internal/domain"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
)

// UseCase use case для получения доступных слотов барбера
type UseCase struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	slots       SlotProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	slots SlotProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		slots:       slots,
		logger:      logger,
	}
}

// Execute возвращает доступные слоты барбера на дату для выбранной услуги.
// Длительность слота определяется услугой, для сегодняшней даты прошедшие
// слоты отфильтровываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Слоты показываем только для активной услуги
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// И только для активного барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("GetAvailableSlots: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	slots, err := uc.slots.ListSlotsForBooking(ctx, req.BarberID, req.Date, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s, found %d slots",
		req.BarberID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		Date:            domain.DateOnly(req.Date),
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
