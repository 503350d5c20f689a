package shopconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbernet/booking-service/internal/domain"
	settingsRepo "github.com/barbernet/booking-service/internal/infra/storage/settings"
	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

// Service сервис настроек и брендинга магазина
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{settingsRepo: settingsRepo, logger: logger}
}

// GetSettings возвращает настройки слотов. Отсутствие строки настроек
// дает значение по умолчанию, а не ошибку.
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return &models.SettingsResponse{SlotMinutes: domain.DefaultSlotMinutes}, nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return &models.SettingsResponse{SlotMinutes: settings.Granularity()}, nil
}

// UpdateSettings обновляет шаг сетки слотов. Изменение влияет только на
// новые расчеты доступности, существующие записи не трогаются.
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: slotMinutes=%d", req.SlotMinutes)

	if req.SlotMinutes <= 0 {
		s.logger.Warn("UpdateSettings: non-positive slotMinutes=%d", req.SlotMinutes)
		return nil, fmt.Errorf("%w: slotMinutes must be positive", ErrInvalidInput)
	}

	if err := s.settingsRepo.UpsertSettings(ctx, req.SlotMinutes); err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: successfully updated slotMinutes=%d", req.SlotMinutes)
	return &models.SettingsResponse{SlotMinutes: req.SlotMinutes}, nil
}

// GetInfo возвращает брендинг магазина, пустой при отсутствии строки
func (s *Service) GetInfo(ctx context.Context) (*models.InfoResponse, error) {
	info, err := s.settingsRepo.GetInfo(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return &models.InfoResponse{}, nil
		}
		s.logger.Error("GetInfo: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetInfo - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInfo(info), nil
}

// UpdateInfo обновляет брендинг магазина
func (s *Service) UpdateInfo(ctx context.Context, req *models.UpdateInfoRequest) (*models.InfoResponse, error) {
	s.logger.Info("UpdateInfo: updating shop info")

	info := req.ToDomainInfo()
	if err := s.settingsRepo.UpsertInfo(ctx, info); err != nil {
		s.logger.Error("UpdateInfo: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateInfo - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateInfo: successfully updated shop info")
	return models.FromDomainInfo(info), nil
}
