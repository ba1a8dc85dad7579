package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// SalesUseCase listado de ventas con acotado por identidad.
type SalesUseCase struct {
	repo repository.SaleRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SaleRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// List devuelve las ventas visibles para la sesión, con los criterios del
// usuario compuestos en AND sobre el alcance. Un conjunto vacío no es error.
func (uc *SalesUseCase) List(ctx context.Context, s auth.Session, criteria scope.SaleCriteria) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := scope.ForSales(s, criteria).Apply(sales)
	out := make([]dto.SaleResponse, 0, len(filtered))
	for _, sale := range filtered {
		out = append(out, toSaleResponse(sale))
	}
	return out, nil
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{Item: it.Item, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return dto.SaleResponse{
		ID:           s.ID,
		SellerID:     s.SellerID,
		CustomerName: s.CustomerName,
		Items:        items,
		TotalAmount:  s.TotalAmount,
		SaleDate:     formatDate(s.SaleDate),
		EventID:      s.EventID,
	}
}
