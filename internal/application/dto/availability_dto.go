package dto

// AvailabilityBarrelResponse barril que contribuye al estado de una cerveza.
type AvailabilityBarrelResponse struct {
	ID             string `json:"id"`
	LotID          string `json:"lot_id,omitempty"`
	CapacityLiters int    `json:"capacity_liters"`
	IsFull         bool   `json:"is_full"`
}

// BeerAvailabilityResponse estado derivado de una cerveza.
type BeerAvailabilityResponse struct {
	BeerName      string                       `json:"beer_name"`
	Status        string                       `json:"status"` // disponible | bajo_stock | agotado
	TotalCapacity int                          `json:"total_capacity"`
	CurrentVolume int                          `json:"current_volume"`
	Barrels       []AvailabilityBarrelResponse `json:"barrels"`
}
