package interfaces

import (
	"context"
	"mecanica_xpto_quotes/internal/domain/entities"
)

// IQuoteSessionRepository abstracts the authoritative store of quote sessions.
//
// The quote service must be able to:
//   - start a session together with one empty response slot per supplier
//     (dispatch to suppliers is triggered downstream of this write)
//   - read the latest session of an order and its full history
//   - commit an approval as one conditional write (status <> CANCELLED)
//   - cancel a session
//
// Not-found and conditional-check failures are reported as a zero-value
// session with a nil error.

type IQuoteSessionRepository interface {
	Start(ctx context.Context, s entities.QuoteSession) (entities.QuoteSession, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSession, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.QuoteSession, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.QuoteSession, error)
	CommitApproval(ctx context.Context, sessionID, supplierID string, offer *entities.PriceOffer) (entities.QuoteSession, error)
	Cancel(ctx context.Context, sessionID string) (entities.QuoteSession, error)
}
