package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shiptracker/internal/app/ds"
)

// GetShips возвращает все корабли, отсортированные по имени
func (r *Repository) GetShips(ctx context.Context) ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.WithContext(ctx).Order("name").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *Repository) GetShip(ctx context.Context, id uint) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("ship_id = ?", id).First(&ship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ds.Ship{}, ds.ErrShipNotFound
		}
		return ds.Ship{}, err
	}
	return ship, nil
}

func (r *Repository) ShipExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("ship_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateShip - создание корабля
func (r *Repository) CreateShip(ctx context.Context, ship *ds.Ship) error {
	return r.db.WithContext(ctx).Create(ship).Error
}

// UpdateShip overwrites the four mutable fields in a single UPDATE so
// concurrent readers never see a half-updated row.
func (r *Repository) UpdateShip(ctx context.Context, id uint, ship *ds.Ship) error {
	res := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("ship_id = ?", id).Updates(map[string]interface{}{
		"name":        ship.Name,
		"launch_date": ship.LaunchDate,
		"ship_type":   ship.ShipType,
		"tonnage":     ship.Tonnage,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ds.ErrShipNotFound
	}
	return nil
}

// UpdateShipPhoto сохраняет имя файла изображения
func (r *Repository) UpdateShipPhoto(ctx context.Context, id uint, photoURL string) error {
	res := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("ship_id = ?", id).Update("photo_url", photoURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ds.ErrShipNotFound
	}
	return nil
}
