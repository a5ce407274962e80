package interfaces

import (
	"context"
	"mecanica_xpto_quotes/internal/domain/entities"
)

// ISupplierResponseRepository abstracts persistence of per-supplier response
// slots. RecordReply overwrites the slot (last writer wins) and returns a
// zero-value response when the slot does not exist.

type ISupplierResponseRepository interface {
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.SupplierResponse, error)
	RecordReply(ctx context.Context, r entities.SupplierResponse) (entities.SupplierResponse, error)
}
