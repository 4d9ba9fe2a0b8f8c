package salon

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или неактивен
	ErrSalonNotFound = errors.New("salon.repository: salon not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salon.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("salon.repository: failed to scan row")
)
