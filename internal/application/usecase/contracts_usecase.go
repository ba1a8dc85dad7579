package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// ContractsUseCase listado de contratos con acotado por RUT.
type ContractsUseCase struct {
	repo repository.ContractRepository
}

// NewContractsUseCase construye el caso de uso.
func NewContractsUseCase(repo repository.ContractRepository) *ContractsUseCase {
	return &ContractsUseCase{repo: repo}
}

// List devuelve los contratos visibles para la sesión: todos para un
// administrador, solo el propio (por RUT) para el resto.
func (uc *ContractsUseCase) List(ctx context.Context, s auth.Session) ([]dto.ContractResponse, error) {
	contracts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := scope.ForContracts(s).Apply(contracts)
	out := make([]dto.ContractResponse, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, toContractResponse(c))
	}
	return out, nil
}

func toContractResponse(c entity.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:               c.ID,
		UserName:         c.UserName,
		UserRUT:          c.UserRUT,
		FixedHours:       c.FixedHours,
		FixedRatePerHour: c.FixedRatePerHour,
		ExtraRatePerHour: c.ExtraRatePerHour,
	}
}
