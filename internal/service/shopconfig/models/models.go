package models

import "github.com/barbernet/booking-service/internal/domain"

// UpdateSettingsRequest запрос на обновление настроек слотов
type UpdateSettingsRequest struct {
	SlotMinutes int `json:"slotMinutes"`
}

// SettingsResponse ответ с настройками слотов
type SettingsResponse struct {
	SlotMinutes int `json:"slotMinutes"`
}

// UpdateInfoRequest запрос на обновление брендинга магазина
type UpdateInfoRequest struct {
	SiteName  *string `json:"siteName,omitempty"`
	Slogan    *string `json:"slogan,omitempty"`
	AboutUs   *string `json:"aboutUs,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
}

// InfoResponse ответ с брендингом магазина
type InfoResponse struct {
	SiteName  *string `json:"siteName,omitempty"`
	Slogan    *string `json:"slogan,omitempty"`
	AboutUs   *string `json:"aboutUs,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
}

// ToDomainInfo конвертирует request в domain модель
func (r *UpdateInfoRequest) ToDomainInfo() *domain.ShopInfo {
	return &domain.ShopInfo{
		SiteName:  r.SiteName,
		Slogan:    r.Slogan,
		AboutUs:   r.AboutUs,
		Phone:     r.Phone,
		Email:     r.Email,
		Instagram: r.Instagram,
		Facebook:  r.Facebook,
		Address:   r.Address,
		City:      r.City,
	}
}

// FromDomainInfo конвертирует domain модель в response
func FromDomainInfo(info *domain.ShopInfo) *InfoResponse {
	return &InfoResponse{
		SiteName:  info.SiteName,
		Slogan:    info.Slogan,
		AboutUs:   info.AboutUs,
		Phone:     info.Phone,
		Email:     info.Email,
		Instagram: info.Instagram,
		Facebook:  info.Facebook,
		Address:   info.Address,
		City:      info.City,
	}
}
