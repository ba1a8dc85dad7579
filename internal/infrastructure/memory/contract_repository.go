package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedContracts() []entity.Contract {
	return []entity.Contract{
		{
			ID:               "CON-001",
			UserName:         "Admin User",
			UserRUT:          "11111111-1",
			FixedHours:       160,
			FixedRatePerHour: decimal.NewFromInt(25000),
			ExtraRatePerHour: decimal.NewFromInt(35000),
		},
		{
			ID:               "CON-002",
			UserName:         "Vendedor User",
			UserRUT:          "22222222-2",
			FixedHours:       120,
			FixedRatePerHour: decimal.NewFromInt(18000),
			ExtraRatePerHour: decimal.NewFromInt(28000),
		},
		{
			ID:               "CON-003",
			UserName:         "Productor User",
			UserRUT:          "33333333-3",
			FixedHours:       180,
			FixedRatePerHour: decimal.NewFromInt(20000),
			ExtraRatePerHour: decimal.NewFromInt(30000),
		},
		{
			ID:               "CON-004",
			UserName:         "Super User",
			UserRUT:          "44444444-4",
			FixedHours:       170,
			FixedRatePerHour: decimal.NewFromInt(27000),
			ExtraRatePerHour: decimal.NewFromInt(38000),
		},
	}
}

// ContractRepo tabla mock de contratos.
type ContractRepo struct {
	contracts []entity.Contract
	latency   time.Duration
}

var _ repository.ContractRepository = (*ContractRepo)(nil)

// NewContractRepository construye la tabla mock de contratos.
func NewContractRepository(latency time.Duration) *ContractRepo {
	return &ContractRepo{contracts: seedContracts(), latency: latency}
}

// List devuelve todos los contratos (copia).
func (r *ContractRepo) List(ctx context.Context) ([]entity.Contract, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Contract, len(r.contracts))
	copy(out, r.contracts)
	return out, nil
}
