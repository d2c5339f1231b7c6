package service

import (
	"context"
	"strings"

	"shiptracker/internal/app/ds"
)

type shipRepository interface {
	GetShips(ctx context.Context) ([]ds.Ship, error)
	GetShip(ctx context.Context, id uint) (ds.Ship, error)
	CreateShip(ctx context.Context, ship *ds.Ship) error
	UpdateShip(ctx context.Context, id uint, ship *ds.Ship) error
	UpdateShipPhoto(ctx context.Context, id uint, photoURL string) error
	CountReports(ctx context.Context, shipID uint) (int64, error)
	CountReportsByShip(ctx context.Context) (map[uint]int64, error)
}

type ShipService struct {
	repo shipRepository
}

func NewShipService(repo shipRepository) *ShipService {
	return &ShipService{repo: repo}
}

// List возвращает корабли по имени с живым числом отчётов
func (s *ShipService) List(ctx context.Context) ([]ds.ShipResponse, error) {
	ships, err := s.repo.GetShips(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountReportsByShip(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ds.ShipResponse, 0, len(ships))
	for i := range ships {
		responses = append(responses, ships[i].ToResponse(int(counts[ships[i].ShipID])))
	}
	return responses, nil
}

func (s *ShipService) GetByID(ctx context.Context, id uint) (ds.ShipResponse, error) {
	ship, err := s.repo.GetShip(ctx, id)
	if err != nil {
		return ds.ShipResponse{}, err
	}
	count, err := s.repo.CountReports(ctx, id)
	if err != nil {
		return ds.ShipResponse{}, err
	}
	return ship.ToResponse(int(count)), nil
}

// Create валидирует поля до записи; у нового корабля reportCount == 0
func (s *ShipService) Create(ctx context.Context, req ds.ShipRequest) (ds.ShipResponse, error) {
	if err := ds.Validate(req); err != nil {
		return ds.ShipResponse{}, err
	}
	ship := ds.Ship{
		Name:       strings.TrimSpace(req.Name),
		LaunchDate: req.LaunchDate,
		ShipType:   strings.TrimSpace(req.ShipType),
		Tonnage:    req.Tonnage,
	}
	if err := s.repo.CreateShip(ctx, &ship); err != nil {
		return ds.ShipResponse{}, err
	}
	return ship.ToResponse(0), nil
}

// Update перезаписывает все четыре поля; частичное обновление не поддерживается
func (s *ShipService) Update(ctx context.Context, id uint, req ds.ShipRequest) (ds.ShipResponse, error) {
	if err := ds.Validate(req); err != nil {
		return ds.ShipResponse{}, err
	}
	ship := ds.Ship{
		Name:       strings.TrimSpace(req.Name),
		LaunchDate: req.LaunchDate,
		ShipType:   strings.TrimSpace(req.ShipType),
		Tonnage:    req.Tonnage,
	}
	if err := s.repo.UpdateShip(ctx, id, &ship); err != nil {
		return ds.ShipResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// AttachPhoto записывает имя загруженного файла изображения
func (s *ShipService) AttachPhoto(ctx context.Context, id uint, photoURL string) error {
	return s.repo.UpdateShipPhoto(ctx, id, photoURL)
}
