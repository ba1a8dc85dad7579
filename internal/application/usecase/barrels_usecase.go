package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// BarrelsUseCase listado y alta de barriles. La lectura va contra las tablas
// mock; el alta contra el BarrelCreator inyectado (memoria o tabla `barril`
// del backend gestionado, según configuración).
type BarrelsUseCase struct {
	repo    repository.BarrelRepository
	creator repository.BarrelCreator
}

// NewBarrelsUseCase construye el caso de uso.
func NewBarrelsUseCase(repo repository.BarrelRepository, creator repository.BarrelCreator) *BarrelsUseCase {
	return &BarrelsUseCase{repo: repo, creator: creator}
}

// List devuelve todos los barriles (recurso global).
func (uc *BarrelsUseCase) List(ctx context.Context) ([]dto.BarrelResponse, error) {
	barrels, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BarrelResponse, 0, len(barrels))
	for _, b := range barrels {
		out = append(out, ToBarrelResponse(b))
	}
	return out, nil
}

// Create da de alta un barril con ID generado.
func (uc *BarrelsUseCase) Create(ctx context.Context, in dto.CreateBarrelRequest) (*dto.BarrelResponse, error) {
	if in.BeerName == "" || in.CapacityLiters <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var brewedAt time.Time
	if in.BrewedAt != "" {
		t, err := time.Parse(dateLayout, in.BrewedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: brewed_at", domain.ErrInvalidInput)
		}
		brewedAt = t
	}
	barrel := &entity.Barrel{
		ID:             uuid.New().String(),
		BeerName:       in.BeerName,
		MainFlavor:     in.MainFlavor,
		BrewedAt:       brewedAt,
		LotID:          in.LotID,
		ABV:            in.ABV,
		CapacityLiters: in.CapacityLiters,
		IsFull:         in.IsFull,
	}
	if err := uc.creator.Create(ctx, barrel); err != nil {
		return nil, err
	}
	resp := ToBarrelResponse(*barrel)
	return &resp, nil
}

// ToBarrelResponse proyecta un barril al DTO de salida.
func ToBarrelResponse(b entity.Barrel) dto.BarrelResponse {
	return dto.BarrelResponse{
		ID:             b.ID,
		BeerName:       b.BeerName,
		MainFlavor:     b.MainFlavor,
		BrewedAt:       formatDate(b.BrewedAt),
		LotID:          b.LotID,
		ABV:            b.ABV,
		CapacityLiters: b.CapacityLiters,
		IsFull:         b.IsFull,
	}
}
