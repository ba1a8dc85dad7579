package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain/cerveza"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// AvailabilityUseCase estado de las cervezas, derivado del inventario de
// barriles en cada llamada (nunca se persiste).
type AvailabilityUseCase struct {
	barrels repository.BarrelRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(barrels repository.BarrelRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{barrels: barrels}
}

// List devuelve el estado por cerveza sobre el inventario vigente completo.
func (uc *AvailabilityUseCase) List(ctx context.Context) ([]dto.BeerAvailabilityResponse, error) {
	barrels, err := uc.barrels.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := cerveza.ComputeAvailability(barrels)
	out := make([]dto.BeerAvailabilityResponse, 0, len(groups))
	for _, g := range groups {
		bs := make([]dto.AvailabilityBarrelResponse, 0, len(g.Barrels))
		for _, b := range g.Barrels {
			bs = append(bs, dto.AvailabilityBarrelResponse{
				ID:             b.ID,
				LotID:          b.LotID,
				CapacityLiters: b.CapacityLiters,
				IsFull:         b.IsFull,
			})
		}
		out = append(out, dto.BeerAvailabilityResponse{
			BeerName:      g.BeerName,
			Status:        string(g.Status),
			TotalCapacity: g.TotalCapacity,
			CurrentVolume: g.CurrentVolume,
			Barrels:       bs,
		})
	}
	return out, nil
}
