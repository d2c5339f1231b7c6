package repository

import (
	"context"

	"shiptracker/internal/app/ds"
)

// GetReportsByShip возвращает отчёты корабля по возрастанию даты.
// report_id добивает порядок при одинаковых датах (stable sort).
func (r *Repository) GetReportsByShip(ctx context.Context, shipID uint) ([]ds.LocationReport, error) {
	var reports []ds.LocationReport
	err := r.db.WithContext(ctx).
		Where("ship_id = ?", shipID).
		Order("report_date ASC, report_id ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport - добавление отчёта (append-only, без update/delete)
func (r *Repository) CreateReport(ctx context.Context, report *ds.LocationReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// CountReports возвращает живое число отчётов корабля
func (r *Repository) CountReports(ctx context.Context, shipID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.LocationReport{}).Where("ship_id = ?", shipID).Count(&count).Error
	return count, err
}

// CountReportsByShip возвращает число отчётов для каждого корабля одной выборкой
func (r *Repository) CountReportsByShip(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		ShipID uint
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&ds.LocationReport{}).
		Select("ship_id, COUNT(*) AS count").
		Group("ship_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ShipID] = row.Count
	}
	return counts, nil
}
