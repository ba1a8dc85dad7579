package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedBarrels() []entity.Barrel {
	return []entity.Barrel{
		{
			ID:             "BRL-001",
			BeerName:       "Cerveza Lager",
			MainFlavor:     "Malta Dulce",
			BrewedAt:       mustDate("2024-05-10"),
			LotID:          "LOTE-LAGER-001",
			ABV:            decimal.NewFromFloat(5.0),
			CapacityLiters: 50,
			IsFull:         true,
		},
		{
			ID:             "BRL-002",
			BeerName:       "Cerveza IPA",
			MainFlavor:     "Cítrico y Resinoso",
			BrewedAt:       mustDate("2024-05-15"),
			LotID:          "LOTE-IPA-001",
			ABV:            decimal.NewFromFloat(6.5),
			CapacityLiters: 50,
			IsFull:         true,
		},
		{
			ID:             "BRL-003",
			BeerName:       "Cerveza Stout",
			MainFlavor:     "Café y Chocolate",
			BrewedAt:       mustDate("2024-05-20"),
			LotID:          "LOTE-STOUT-001",
			ABV:            decimal.NewFromFloat(7.0),
			CapacityLiters: 30,
			IsFull:         false, // parcialmente lleno
		},
		{
			ID:             "BRL-004",
			BeerName:       "Cerveza Amber Ale",
			MainFlavor:     "Caramelo y Tostado",
			BrewedAt:       mustDate("2024-05-25"),
			LotID:          "LOTE-AMBER-001",
			ABV:            decimal.NewFromFloat(5.5),
			CapacityLiters: 50,
			IsFull:         true,
		},
		{
			ID:             "BRL-005",
			BeerName:       "Cerveza Pilsner",
			MainFlavor:     "Lúpulo Floral",
			BrewedAt:       mustDate("2024-06-01"),
			LotID:          "LOTE-PILSNER-001",
			ABV:            decimal.NewFromFloat(4.8),
			CapacityLiters: 50,
			IsFull:         true,
		},
		{
			// Mismo nombre y lote que BRL-002: dos barriles de un mismo lote.
			ID:             "BRL-006",
			BeerName:       "Cerveza IPA",
			MainFlavor:     "Frutal Intenso",
			BrewedAt:       mustDate("2024-06-10"),
			LotID:          "LOTE-IPA-001",
			ABV:            decimal.NewFromFloat(8.0),
			CapacityLiters: 50,
			IsFull:         true,
		},
	}
}

// BarrelRepo tabla mock de barriles. Es la única tabla mock con escritura
// (alta de barriles cuando no hay backend PostgreSQL configurado), de ahí el
// mutex; las demás son de solo lectura.
type BarrelRepo struct {
	mu      sync.RWMutex
	barrels []entity.Barrel
	latency time.Duration
}

var (
	_ repository.BarrelRepository = (*BarrelRepo)(nil)
	_ repository.BarrelCreator    = (*BarrelRepo)(nil)
)

// NewBarrelRepository construye la tabla mock de barriles.
func NewBarrelRepository(latency time.Duration) *BarrelRepo {
	return &BarrelRepo{barrels: seedBarrels(), latency: latency}
}

// List devuelve todos los barriles (copia).
func (r *BarrelRepo) List(ctx context.Context) ([]entity.Barrel, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Barrel, len(r.barrels))
	copy(out, r.barrels)
	return out, nil
}

// ListByLot devuelve los barriles del lote indicado.
func (r *BarrelRepo) ListByLot(ctx context.Context, lotID string) ([]entity.Barrel, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Barrel, 0)
	for _, b := range r.barrels {
		if b.LotID == lotID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Create añade un barril a la tabla mock.
func (r *BarrelRepo) Create(ctx context.Context, barrel *entity.Barrel) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barrels = append(r.barrels, *barrel)
	return nil
}
