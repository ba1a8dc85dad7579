package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// LotsUseCase detalle de lotes de producción.
type LotsUseCase struct {
	lots    repository.LotRepository
	barrels repository.BarrelRepository
}

// NewLotsUseCase construye el caso de uso.
func NewLotsUseCase(lots repository.LotRepository, barrels repository.BarrelRepository) *LotsUseCase {
	return &LotsUseCase{lots: lots, barrels: barrels}
}

// GetByID devuelve el detalle del lote con sus barriles asociados, o nil si
// el lote no existe.
func (uc *LotsUseCase) GetByID(ctx context.Context, id string) (*dto.LotResponse, error) {
	lot, err := uc.lots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, nil
	}
	barrels, err := uc.barrels.ListByLot(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLotResponse(lot, barrels), nil
}

func toLotResponse(l *entity.Lot, barrels []entity.Barrel) *dto.LotResponse {
	bs := make([]dto.BarrelResponse, 0, len(barrels))
	for _, b := range barrels {
		bs = append(bs, ToBarrelResponse(b))
	}
	return &dto.LotResponse{
		ID:           l.ID,
		ElaboratedBy: l.ElaboratedBy,
		Ingredients: dto.LotIngredientsResponse{
			Maltas:             l.Ingredients.Maltas,
			Lupulos:            l.Ingredients.Lupulos,
			Levadura:           l.Ingredients.Levadura,
			TipoFermentacion:   l.Ingredients.TipoFermentacion,
			TiempoFermentacion: l.Ingredients.TiempoFermentacion,
			AnadidosEspeciales: l.Ingredients.AnadidosEspeciales,
		},
		Description: l.Description,
		Barrels:     bs,
	}
}
