package interfaces

import (
	"context"
	"mecanica_xpto_quotes/internal/domain/entities"
)

// ISupplierRepository is the supplier directory used when a quote request
// does not name its targets.
type ISupplierRepository interface {
	ListActive(ctx context.Context) ([]entities.SupplierTarget, error)
}
