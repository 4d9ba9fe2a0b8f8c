package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис витрины каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListBySalon возвращает активные услуги салона в порядке витрины
func (s *Service) ListBySalon(ctx context.Context, salonID int64) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.ListActiveBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	resp := &models.ServiceListResponse{
		Services: make([]models.ServiceResponse, 0, len(services)),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, models.FromDomainService(svc))
	}
	return resp, nil
}
