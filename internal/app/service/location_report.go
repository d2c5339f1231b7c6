package service

import (
	"context"
	"strings"

	"shiptracker/internal/app/ds"
)

type locationReportRepository interface {
	GetReportsByShip(ctx context.Context, shipID uint) ([]ds.LocationReport, error)
	CreateReport(ctx context.Context, report *ds.LocationReport) error
	ShipExists(ctx context.Context, id uint) (bool, error)
}

type LocationReportService struct {
	repo locationReportRepository
}

func NewLocationReportService(repo locationReportRepository) *LocationReportService {
	return &LocationReportService{repo: repo}
}

// ListByShip возвращает отчёты корабля по возрастанию даты.
// Пустой список — не ошибка; несуществующий корабль — ошибка.
func (s *LocationReportService) ListByShip(ctx context.Context, shipID uint) ([]ds.LocationReportResponse, error) {
	exists, err := s.repo.ShipExists(ctx, shipID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ds.ErrShipNotFound
	}
	reports, err := s.repo.GetReportsByShip(ctx, shipID)
	if err != nil {
		return nil, err
	}
	responses := make([]ds.LocationReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, reports[i].ToResponse())
	}
	return responses, nil
}

// Create добавляет отчёт к существующему кораблю. Проверка корабля и
// валидация идут до записи, так что неудача не оставляет строк.
// Дубли дат и даты задним числом допустимы: отчёты — это журнал.
func (s *LocationReportService) Create(ctx context.Context, shipID uint, req ds.LocationReportRequest) (ds.LocationReportResponse, error) {
	exists, err := s.repo.ShipExists(ctx, shipID)
	if err != nil {
		return ds.LocationReportResponse{}, err
	}
	if !exists {
		return ds.LocationReportResponse{}, ds.ErrShipNotFound
	}
	if err := ds.Validate(req); err != nil {
		return ds.LocationReportResponse{}, err
	}
	report := ds.LocationReport{
		ShipID:     shipID,
		ReportDate: req.ReportDate,
		Country:    strings.TrimSpace(req.Country),
		Port:       strings.TrimSpace(req.Port),
	}
	if err := s.repo.CreateReport(ctx, &report); err != nil {
		return ds.LocationReportResponse{}, err
	}
	return report.ToResponse(), nil
}
