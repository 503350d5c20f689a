package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/dbmetrics"
	"github.com/barbernet/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий глобальных настроек магазина
// (единственная строка настроек слотов + брендинг)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings читает строку настроек слотов
func (r *Repository) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slot_minutes", "updated_at").
		From("shop_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ShopSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.SlotMinutes, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// UpsertSettings создает или обновляет единственную строку настроек
func (r *Repository) UpsertSettings(ctx context.Context, slotMinutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_settings").
		Columns("id", "slot_minutes", "updated_at").
		Values(1, slotMinutes, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET slot_minutes = EXCLUDED.slot_minutes, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSettings - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetInfo читает брендинг и контакты магазина
func (r *Repository) GetInfo(ctx context.Context) (*domain.ShopInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "site_name", "slogan", "about_us", "phone", "email",
		"instagram", "facebook", "address", "city", "updated_at",
	).
		From("shop_info").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.ShopInfo
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ID, &info.SiteName, &info.Slogan, &info.AboutUs, &info.Phone,
		&info.Email, &info.Instagram, &info.Facebook, &info.Address, &info.City,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - scan info: %v", ErrScanRow, err)
	}

	info.UpdatedAt = updatedAt.Time

	return &info, nil
}

// UpsertInfo создает или обновляет брендинг магазина
func (r *Repository) UpsertInfo(ctx context.Context, info *domain.ShopInfo) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_info").
		Columns("id", "site_name", "slogan", "about_us", "phone", "email",
			"instagram", "facebook", "address", "city", "updated_at").
		Values(1, info.SiteName, info.Slogan, info.AboutUs, info.Phone, info.Email,
			info.Instagram, info.Facebook, info.Address, info.City, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			slogan = EXCLUDED.slogan,
			about_us = EXCLUDED.about_us,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			instagram = EXCLUDED.instagram,
			facebook = EXCLUDED.facebook,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertInfo - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertInfo - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
