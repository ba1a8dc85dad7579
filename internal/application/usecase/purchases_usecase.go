package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// PurchasesUseCase listado de compras (recurso global).
type PurchasesUseCase struct {
	repo repository.PurchaseRepository
}

// NewPurchasesUseCase construye el caso de uso.
func NewPurchasesUseCase(repo repository.PurchaseRepository) *PurchasesUseCase {
	return &PurchasesUseCase{repo: repo}
}

// List devuelve las compras que pasan los criterios del usuario. No hay
// acotado por identidad: la autorización del recurso ya la decidió el guard.
func (uc *PurchasesUseCase) List(ctx context.Context, criteria scope.PurchaseCriteria) ([]dto.PurchaseResponse, error) {
	purchases, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := scope.ForPurchases(criteria).Apply(purchases)
	out := make([]dto.PurchaseResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p entity.Purchase) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{Item: it.Item, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return dto.PurchaseResponse{
		ID:              p.ID,
		Supplier:        p.Supplier,
		Items:           items,
		TotalPaid:       p.TotalPaid,
		TransactionDate: formatDate(p.TransactionDate),
	}
}
