package get_services

import (
	"context"

	catalogModels "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBySalon(ctx context.Context, salonID int64) (*catalogModels.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
