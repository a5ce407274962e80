package quoting

import (
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
)

// Snapshot is one authoritative read of a session and all its response slots.
type Snapshot struct {
	Session   entities.QuoteSession
	Responses []entities.SupplierResponse
}

// Projection is the read model the operator UI renders.
type Projection struct {
	SessionID        string
	OrderID          string
	PartDescription  string
	Status           entities.QuoteStatus
	ExpiresInMinutes int
	Groups           Groups
	BestPrice        *float64
	IsCompleted      bool
	WinnerSupplierID string
	WinnerOffer      *entities.PriceOffer
	// Stale is set when the latest refresh failed and this is older data.
	Stale     bool
	FetchedAt time.Time
}

// IsTerminal reports whether polling can stop for this projection.
func (p Projection) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// Project derives the UI projection from a snapshot as seen at now.
func Project(s Snapshot, now time.Time) Projection {
	groups := GroupResponses(s.Responses)
	status := s.Session.EffectiveStatus(now)
	return Projection{
		SessionID:        s.Session.ID,
		OrderID:          s.Session.OrderID,
		PartDescription:  s.Session.PartDescription,
		Status:           status,
		ExpiresInMinutes: s.Session.ExpiresInMinutes(now),
		Groups:           groups,
		BestPrice:        groups.BestPrice(),
		IsCompleted:      status == entities.QuoteStatusCompleted,
		WinnerSupplierID: s.Session.WinnerSupplierID,
		WinnerOffer:      s.Session.WinnerOffer,
		FetchedAt:        now,
	}
}
