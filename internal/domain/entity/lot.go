package entity

// LotIngredients receta de un lote de producción.
type LotIngredients struct {
	Maltas             []string
	Lupulos            []string
	Levadura           string
	TipoFermentacion   string // "Alta (Ale)" | "Baja (Lager)"
	TiempoFermentacion string // ej. "21 días"
	AnadidosEspeciales []string
}

// Lot representa un lote de producción (uno a muchos con Barrel).
type Lot struct {
	ID           string // loteId, ej. "LOTE-IPA-001"
	ElaboratedBy string // productor responsable, nombre + código
	Ingredients  LotIngredients
	Description  string
}
