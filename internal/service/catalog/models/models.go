package models

import "github.com/m04kA/SMC-SalonService/internal/domain"

// ServiceResponse модель ответа с услугой каталога
type ServiceResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	EffectivePrice   float64  `json:"effective_price"`
	DurationMinutes  int      `json:"duration_minutes"`
	Category         string   `json:"category,omitempty"`
	Popular          bool     `json:"popular"`
	OnPromotion      bool     `json:"on_promotion"`
	PromotionalPrice *float64 `json:"promotional_price,omitempty"`
}

// ServiceListResponse модель ответа со списком услуг салона
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует доменную модель услуги в модель ответа
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		EffectivePrice:   s.EffectivePrice(),
		DurationMinutes:  s.DurationMinutes,
		Category:         s.Category,
		Popular:          s.Popular,
		OnPromotion:      s.OnPromotion,
		PromotionalPrice: s.PromotionalPrice,
	}
}
