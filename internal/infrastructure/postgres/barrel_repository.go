package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cerveceria-api/internal/domain"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

var (
	_ repository.BarrelRepository = (*BarrelRepo)(nil)
	_ repository.BarrelCreator    = (*BarrelRepo)(nil)
)

// BarrelRepo implementación de BarrelRepository/BarrelCreator sobre PostgreSQL
// (la tabla `barril` del backend gestionado). Pasar pool o tx (Querier).
type BarrelRepo struct {
	q Querier
}

// NewBarrelRepository construye el adaptador de barriles. Pasar pool o tx (Querier).
func NewBarrelRepository(q Querier) *BarrelRepo {
	return &BarrelRepo{q: q}
}

// List devuelve todos los barriles ordenados por fecha de elaboración.
func (r *BarrelRepo) List(ctx context.Context) ([]entity.Barrel, error) {
	query := `
		SELECT id_barril, nombre_cerveza, sabor_principal, fecha_elaboracion,
		       id_lote, graduacion, capacidad, esta_lleno_barril
		FROM barril
		ORDER BY fecha_elaboracion, id_barril`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list barriles: %w", err)
	}
	defer rows.Close()

	var out []entity.Barrel
	for rows.Next() {
		var b entity.Barrel
		if err := rows.Scan(
			&b.ID, &b.BeerName, &b.MainFlavor, &b.BrewedAt,
			&b.LotID, &b.ABV, &b.CapacityLiters, &b.IsFull,
		); err != nil {
			return nil, fmt.Errorf("scan barril: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar barriles: %w", err)
	}
	return out, nil
}

// ListByLot devuelve los barriles del lote indicado.
func (r *BarrelRepo) ListByLot(ctx context.Context, lotID string) ([]entity.Barrel, error) {
	query := `
		SELECT id_barril, nombre_cerveza, sabor_principal, fecha_elaboracion,
		       id_lote, graduacion, capacidad, esta_lleno_barril
		FROM barril
		WHERE id_lote = $1
		ORDER BY fecha_elaboracion, id_barril`
	rows, err := r.q.Query(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("list barriles por lote: %w", err)
	}
	defer rows.Close()

	var out []entity.Barrel
	for rows.Next() {
		var b entity.Barrel
		if err := rows.Scan(
			&b.ID, &b.BeerName, &b.MainFlavor, &b.BrewedAt,
			&b.LotID, &b.ABV, &b.CapacityLiters, &b.IsFull,
		); err != nil {
			return nil, fmt.Errorf("scan barril: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar barriles: %w", err)
	}
	return out, nil
}

// Create inserta un barril. El ID ya viene generado (uuid) desde el caso de uso.
func (r *BarrelRepo) Create(ctx context.Context, barrel *entity.Barrel) error {
	query := `
		INSERT INTO barril (id_barril, nombre_cerveza, sabor_principal, fecha_elaboracion,
		                    id_lote, graduacion, capacidad, esta_lleno_barril)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		barrel.ID, barrel.BeerName, barrel.MainFlavor, barrel.BrewedAt,
		barrel.LotID, barrel.ABV, barrel.CapacityLiters, barrel.IsFull,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("barril %s: %w", barrel.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insertar barril: %w", err)
	}
	return nil
}
