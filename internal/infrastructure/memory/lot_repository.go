package memory

import (
	"context"
	"time"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedLots() map[string]entity.Lot {
	lots := []entity.Lot{
		{
			ID:           "LOTE-LAGER-001",
			ElaboratedBy: "Productor User (ID: productor123)",
			Ingredients: entity.LotIngredients{
				Maltas:             []string{"Malta Pilsner", "Malta Carapils"},
				Lupulos:            []string{"Hallertau", "Saaz"},
				Levadura:           "SafLager W-34/70",
				TipoFermentacion:   "Baja (Lager)",
				TiempoFermentacion: "21 días",
				AnadidosEspeciales: []string{"Clarificante"},
			},
			Description: "Lote de cerveza Lager clásica con un perfil de malta suave y final limpio.",
		},
		{
			ID:           "LOTE-IPA-001",
			ElaboratedBy: "Admin User (ID: admin123)",
			Ingredients: entity.LotIngredients{
				Maltas:             []string{"Malta Pale Ale", "Malta Munich"},
				Lupulos:            []string{"Cascade", "Citra", "Mosaic"},
				Levadura:           "SafAle US-05",
				TipoFermentacion:   "Alta (Ale)",
				TiempoFermentacion: "14 días",
				AnadidosEspeciales: []string{"Dry Hopping con Citra"},
			},
			Description: "Lote de IPA con un fuerte aroma y sabor a lúpulo cítrico y tropical.",
		},
		{
			ID:           "LOTE-STOUT-001",
			ElaboratedBy: "Productor User (ID: productor123)",
			Ingredients: entity.LotIngredients{
				Maltas:             []string{"Malta Roasted Barley", "Malta Chocolate", "Malta Pale Ale"},
				Lupulos:            []string{"Fuggles"},
				Levadura:           "SafAle S-04",
				TipoFermentacion:   "Alta (Ale)",
				TiempoFermentacion: "18 días",
				AnadidosEspeciales: []string{"Cacao Nibs"},
			},
			Description: "Lote de Stout oscura con notas de café tostado y chocolate amargo.",
		},
		{
			ID:           "LOTE-AMBER-001",
			ElaboratedBy: "Productor User (ID: productor123)",
			Ingredients: entity.LotIngredients{
				Maltas:             []string{"Malta Amber", "Malta Cristal"},
				Lupulos:            []string{"East Kent Goldings"},
				Levadura:           "Wyeast 1056",
				TipoFermentacion:   "Alta (Ale)",
				TiempoFermentacion: "16 días",
				AnadidosEspeciales: []string{},
			},
			Description: "Lote de Amber Ale balanceada con dulzor a caramelo y un final seco.",
		},
		{
			ID:           "LOTE-PILSNER-001",
			ElaboratedBy: "Productor User (ID: productor123)",
			Ingredients: entity.LotIngredients{
				Maltas:             []string{"Malta Pilsner"},
				Lupulos:            []string{"Saaz", "Tettnang"},
				Levadura:           "White Labs WLP830",
				TipoFermentacion:   "Baja (Lager)",
				TiempoFermentacion: "25 días",
				AnadidosEspeciales: []string{},
			},
			Description: "Lote de Pilsner clásica, limpia y refrescante con un carácter floral.",
		},
	}
	m := make(map[string]entity.Lot, len(lots))
	for _, l := range lots {
		m[l.ID] = l
	}
	return m
}

// LotRepo tabla mock de lotes.
type LotRepo struct {
	lots    map[string]entity.Lot
	latency time.Duration
}

var _ repository.LotRepository = (*LotRepo)(nil)

// NewLotRepository construye la tabla mock de lotes.
func NewLotRepository(latency time.Duration) *LotRepo {
	return &LotRepo{lots: seedLots(), latency: latency}
}

// GetByID devuelve el lote, o nil si no existe (no es error).
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	lot, ok := r.lots[id]
	if !ok {
		return nil, nil
	}
	return &lot, nil
}
