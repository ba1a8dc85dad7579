package dto

// LotIngredientsResponse receta del lote.
type LotIngredientsResponse struct {
	Maltas             []string `json:"maltas"`
	Lupulos            []string `json:"lupulos"`
	Levadura           string   `json:"levadura"`
	TipoFermentacion   string   `json:"tipo_fermentacion"`
	TiempoFermentacion string   `json:"tiempo_fermentacion"`
	AnadidosEspeciales []string `json:"anadidos_especiales"`
}

// LotResponse detalle de un lote con sus barriles asociados.
type LotResponse struct {
	ID           string                 `json:"id"`
	ElaboratedBy string                 `json:"elaborated_by"`
	Ingredients  LotIngredientsResponse `json:"ingredients"`
	Description  string                 `json:"description"`
	Barrels      []BarrelResponse       `json:"barrels"`
}
